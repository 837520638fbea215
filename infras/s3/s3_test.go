package s3_test

import (
	"bytes"
	"context"
	"errors"
	"io"
	"mime/multipart"
	"net/textproto"
	"testing"
	"time"

	"studio/config"
	"studio/infras/otel/mocks"
	"studio/infras/s3"

	awsS3 "github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeObjectAPI struct {
	put       *awsS3.PutObjectInput
	body      []byte
	deleted   []string
	putErr    error
	deleteErr error
}

func (f *fakeObjectAPI) PutObject(_ context.Context, params *awsS3.PutObjectInput, _ ...func(*awsS3.Options)) (*awsS3.PutObjectOutput, error) {
	if f.putErr != nil {
		return nil, f.putErr
	}

	f.put = params
	f.body, _ = io.ReadAll(params.Body)

	return &awsS3.PutObjectOutput{}, nil
}

func (f *fakeObjectAPI) DeleteObject(_ context.Context, params *awsS3.DeleteObjectInput, _ ...func(*awsS3.Options)) (*awsS3.DeleteObjectOutput, error) {
	if f.deleteErr != nil {
		return nil, f.deleteErr
	}

	f.deleted = append(f.deleted, *params.Key)

	return &awsS3.DeleteObjectOutput{}, nil
}

type memFile struct {
	*bytes.Reader
}

func (memFile) Close() error { return nil }

func newConfig(publicDomain string) *config.Config {
	cfg := &config.Config{}
	cfg.External.S3.BucketName = "studio"
	cfg.External.S3.APIEndpoint = "http://localhost:9000"
	cfg.External.S3.PublicDomain = publicDomain

	return cfg
}

func imageHeader() *multipart.FileHeader {
	return &multipart.FileHeader{
		Filename: "wedding.png",
		Header:   textproto.MIMEHeader{"Content-Type": {"image/png"}},
	}
}

func TestUploadFile(t *testing.T) {
	api := &fakeObjectAPI{}
	client := s3.NewWithClient(api, newConfig("https://cdn.example.com/"), mocks.NewOtel())

	obj, err := client.UploadFile(context.Background(), "gallery", memFile{bytes.NewReader([]byte("png-bytes"))}, imageHeader(), "abc.png")
	require.NoError(t, err)

	assert.Equal(t, "gallery/abc.png", obj.Key)
	assert.Equal(t, "https://cdn.example.com/gallery/abc.png", obj.URL)
	assert.Equal(t, "studio", *api.put.Bucket)
	assert.Equal(t, "image/png", *api.put.ContentType)
	assert.Equal(t, []byte("png-bytes"), api.body)
}

func TestUploadFileWithoutPublicDomain(t *testing.T) {
	client := s3.NewWithClient(&fakeObjectAPI{}, newConfig(""), mocks.NewOtel())

	obj, err := client.UploadFile(context.Background(), "gallery", memFile{bytes.NewReader([]byte("x"))}, imageHeader(), "abc.png")
	require.NoError(t, err)
	assert.Equal(t, "http://localhost:9000/studio/gallery/abc.png", obj.URL)
}

func TestUploadFileError(t *testing.T) {
	tracer := mocks.NewOtel()
	client := s3.NewWithClient(&fakeObjectAPI{putErr: errors.New("host unreachable")}, newConfig(""), tracer)

	_, err := client.UploadFile(context.Background(), "gallery", memFile{bytes.NewReader([]byte("x"))}, imageHeader(), "abc.png")
	require.Error(t, err)
	assert.Len(t, tracer.Errors(), 1)
}

func TestDeleteFile(t *testing.T) {
	api := &fakeObjectAPI{}
	client := s3.NewWithClient(api, newConfig(""), mocks.NewOtel())

	require.NoError(t, client.DeleteFile(context.Background(), "gallery/abc.png"))
	assert.Equal(t, []string{"gallery/abc.png"}, api.deleted)

	api.deleteErr = errors.New("denied")
	assert.Error(t, client.DeleteFile(context.Background(), "gallery/abc.png"))
}

func TestObjectName(t *testing.T) {
	tests := []struct {
		contentType string
		filename    string
		ext         string
	}{
		{contentType: "image/jpeg", filename: "logo.JPEG", ext: ".jpg"},
		{contentType: "image/webp", filename: "banner", ext: ".webp"},
		{contentType: "application/octet-stream", filename: "cover.PNG", ext: ".png"},
	}

	for _, tt := range tests {
		t.Run(tt.contentType, func(t *testing.T) {
			header := &multipart.FileHeader{
				Filename: tt.filename,
				Header:   textproto.MIMEHeader{"Content-Type": {tt.contentType}},
			}

			name := s3.ObjectName(header)

			assert.Len(t, name, 36+len(tt.ext))
			assert.Equal(t, tt.ext, name[36:])
		})
	}
}

func TestUploadTimeout(t *testing.T) {
	cfg := &config.Config{}
	assert.Equal(t, 30*time.Second, s3.UploadTimeout(cfg))

	cfg.External.S3.UploadTimeoutSeconds = 5
	assert.Equal(t, 5*time.Second, s3.UploadTimeout(cfg))
}

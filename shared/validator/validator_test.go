package validator_test

import (
	"mime/multipart"
	"net/http"
	"net/textproto"
	"strings"
	"testing"

	"studio/shared/failure"
	"studio/shared/validator"

	"github.com/stretchr/testify/assert"
)

type loginForm struct {
	Username string `validate:"notblank,max=64"  json:"username"`
	Password string `validate:"required"         json:"password"`
}

type passwordForm struct {
	NewPassword     string `validate:"required,min=8"            json:"new_password"`
	ConfirmPassword string `validate:"eqfield=NewPassword"       json:"confirm_password"`
}

type imageForm struct {
	Image *multipart.FileHeader `validate:"required,mimetypes=image/png image/jpeg,maxfilesize=1"`
}

func TestValidateStruct(t *testing.T) {
	tests := []struct {
		name        string
		data        *loginForm
		expectError bool
	}{
		{name: "valid form", data: &loginForm{Username: "admin", Password: "admin123"}},
		{name: "blank username", data: &loginForm{Username: "   ", Password: "admin123"}, expectError: true},
		{name: "missing password", data: &loginForm{Username: "admin"}, expectError: true},
		{name: "username too long", data: &loginForm{Username: strings.Repeat("a", 65), Password: "x"}, expectError: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := validator.ValidateStruct(tt.data)

			if tt.expectError {
				assert.Error(t, err)
				assert.Equal(t, http.StatusBadRequest, failure.GetCode(err))
				return
			}

			assert.NoError(t, err)
		})
	}
}

func TestValidationMessages(t *testing.T) {
	err := validator.ValidateStruct(&passwordForm{NewPassword: "short", ConfirmPassword: "short"})
	assert.EqualError(t, err, "NewPassword must be at least 8 characters")

	err = validator.ValidateStruct(&passwordForm{NewPassword: "longenough", ConfirmPassword: "different"})
	assert.EqualError(t, err, "ConfirmPassword must match NewPassword")

	err = validator.ValidateStruct(&loginForm{Password: "x"})
	assert.EqualError(t, err, "Username is required")
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name        string
		jsonBody    string
		expectError bool
	}{
		{name: "valid JSON", jsonBody: `{"username":"admin","password":"admin123"}`},
		{name: "failing rules", jsonBody: `{"username":"","password":"admin123"}`, expectError: true},
		{name: "malformed JSON", jsonBody: `{"username":}`, expectError: true},
		{name: "empty object", jsonBody: `{}`, expectError: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var data loginForm
			err := validator.Validate(strings.NewReader(tt.jsonBody), &data)

			if tt.expectError {
				assert.Error(t, err)
				return
			}

			assert.NoError(t, err)
			assert.Equal(t, "admin", data.Username)
		})
	}
}

func TestFileValidation(t *testing.T) {
	header := func(contentType string, size int64) *multipart.FileHeader {
		h := textproto.MIMEHeader{}
		h.Set("Content-Type", contentType)

		return &multipart.FileHeader{Filename: "photo", Header: h, Size: size}
	}

	assert.NoError(t, validator.ValidateStruct(&imageForm{Image: header("image/png", 512)}))
	assert.Error(t, validator.ValidateStruct(&imageForm{Image: header("application/pdf", 512)}))
	assert.Error(t, validator.ValidateStruct(&imageForm{Image: header("image/jpeg", 2<<20)}))
	assert.Error(t, validator.ValidateStruct(&imageForm{}))
}

func TestValidateVar(t *testing.T) {
	assert.NoError(t, validator.ValidateVar("Wedding", "required"))
	assert.Error(t, validator.ValidateVar("", "required"))
	assert.Error(t, validator.ValidateVar("x", "min=2"))
}

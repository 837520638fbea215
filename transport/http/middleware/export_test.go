package middleware

// LoginClients reports how many client buckets the login throttle holds.
func LoginClients(app AppMiddleware) int {
	a := app.(*appMiddleware)

	a.throttle.mu.Lock()
	defer a.throttle.mu.Unlock()

	return len(a.throttle.clients)
}

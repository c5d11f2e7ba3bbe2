// Package credentials seals the password field of login and registration
// payloads before they leave the client.
//
// A Sealer replaces the plaintext password with the output of an
// encryption.Encryptor and builds the request Envelope an HTTP transport
// would send to /login or /register. Nothing here performs network I/O.
//
//	enc, _ := encryption.New(secretKey)
//	sealer, _ := credentials.NewSealer(enc)
//	env, err := sealer.BuildLoginEnvelope(ctx, credentials.LoginRequest{
//		Email:    "jane@example.com",
//		Password: "hunter22",
//	})
//
// Plaintext and sealed passwords are never logged.
package credentials

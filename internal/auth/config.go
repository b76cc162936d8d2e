package auth

import "time"

type Config struct {
	SecretKey      []byte
	Issuer         string
	AccessTokenTTL time.Duration
	BcryptCost     int
}

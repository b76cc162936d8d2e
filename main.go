// Package main codebar admin API
//
//	@title			codebar admin API
//	@version		1.0.0
//	@description	Administrative backend for the codebar programme: users, students, instructors and workshops.
//
//	@contact.name	codebar
//	@contact.url	https://codebar.io
//
//	@license.name	MIT
//	@license.url	https://opensource.org/licenses/MIT
//
//	@host			localhost:3000
//	@BasePath		/
//
//	@securityDefinitions.apikey	BearerAuth
//	@in							header
//	@name						Authorization
//	@description				Type "Bearer" followed by a space and the access token.
package main

import "github.com/codebar/admin/internal"

//go:generate swag init --parseDependency --outputTypes go -g ./main.go -o ./internal/server/docs

func main() {
	internal.Run()
}

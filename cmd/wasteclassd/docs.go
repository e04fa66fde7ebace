package main

// General API documentation for swaggo. Run `swag init -g cmd/wasteclassd/docs.go` to regenerate docs/.
//
// @title           wasteclassd API
// @version         1.0
// @description     Waste photo classification with disposal advisories.
//
// @contact.name   wasteclassd maintainers
//
// @license.name   MIT
// @license.url    https://opensource.org/licenses/MIT
//
// @BasePath  /
//
// @schemes http

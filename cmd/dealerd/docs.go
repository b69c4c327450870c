package main

// General API documentation for swaggo. Run `swag init -g cmd/dealerd/docs.go -o docs` to regenerate.
//
// @title           dealerd API
// @version         1.0
// @description     HTTP API for the dealership vehicle catalog and lead-generation service.
//
// @contact.name   dealerd maintainers
//
// @license.name   MIT
// @license.url    https://opensource.org/licenses/MIT
//
// @BasePath  /
//
// @schemes http

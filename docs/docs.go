// Package docs holds the swagger spec registered with swaggo. Regenerate with
// `swag init -g cmd/dealerd/docs.go -o docs` after changing handler payloads.
package docs

import "github.com/swaggo/swag"

const docTemplate = `{
    "schemes": {{ marshal .Schemes }},
    "swagger": "2.0",
    "info": {
        "description": "{{escape .Description}}",
        "title": "{{.Title}}",
        "contact": {},
        "version": "{{.Version}}"
    },
    "host": "{{.Host}}",
    "basePath": "{{.BasePath}}",
    "paths": {
        "/models": {
            "get": {
                "produces": ["application/json"],
                "summary": "List models filtered by segment and free-text query",
                "parameters": [
                    {"type": "string", "name": "segment", "in": "query"},
                    {"type": "string", "name": "q", "in": "query"}
                ],
                "responses": {"200": {"description": "OK"}}
            }
        },
        "/models/{id}": {
            "get": {
                "produces": ["application/json"],
                "summary": "Fetch one model by id",
                "parameters": [{"type": "string", "name": "id", "in": "path", "required": true}],
                "responses": {"200": {"description": "OK"}, "404": {"description": "Not Found"}}
            }
        },
        "/segments": {
            "get": {
                "produces": ["application/json"],
                "summary": "List filter segments",
                "responses": {"200": {"description": "OK"}}
            }
        },
        "/compare": {
            "get": {
                "produces": ["application/json"],
                "summary": "Current comparison selection for the visitor session",
                "responses": {"200": {"description": "OK"}}
            }
        },
        "/compare/toggle": {
            "post": {
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "summary": "Toggle a model in the comparison selection",
                "responses": {"200": {"description": "OK"}, "404": {"description": "Not Found"}}
            }
        },
        "/leads": {
            "post": {
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "summary": "Compose a lead message and its outbound deep links",
                "responses": {"200": {"description": "OK"}, "400": {"description": "Bad Request"}}
            }
        },
        "/contact": {
            "get": {
                "produces": ["application/json"],
                "summary": "Dealership contact card with deep links",
                "responses": {"200": {"description": "OK"}}
            }
        },
        "/news": {
            "get": {
                "produces": ["application/json"],
                "summary": "News and events feed",
                "responses": {"200": {"description": "OK"}}
            }
        }
    }
}`

// SwaggerInfo holds exported Swagger Info so clients can modify it.
var SwaggerInfo = &swag.Spec{
	Version:          "1.0",
	Host:             "",
	BasePath:         "/",
	Schemes:          []string{"http"},
	Title:            "dealerd API",
	Description:      "HTTP API for the dealership catalog and lead-generation service.",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}

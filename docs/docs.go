// Package docs holds the Swagger description of the store admin panel API.
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
		"/panel/session/login": {
			"post": {
				"tags": [
					"session"
				],
				"summary": "Log in",
				"produces": [
					"application/json"
				],
				"responses": {
					"200": {
						"description": "OK",
						"schema": {
							"$ref": "#/definitions/handler.loginResponse"
						}
					},
					"401": {
						"description": "Unauthorized",
						"schema": {
							"$ref": "#/definitions/handler.errorResponse"
						}
					},
					"502": {
						"description": "Bad Gateway",
						"schema": {
							"$ref": "#/definitions/handler.errorResponse"
						}
					}
				},
				"parameters": [
					{
						"in": "body",
						"name": "body",
						"required": true,
						"schema": {
							"$ref": "#/definitions/handler.loginRequest"
						}
					}
				],
				"consumes": [
					"application/json"
				]
			}
		},
		"/panel/session/logout": {
			"post": {
				"tags": [
					"session"
				],
				"summary": "Log out",
				"produces": [
					"application/json"
				],
				"responses": {
					"204": {
						"description": "No Content"
					}
				}
			}
		},
		"/panel/session": {
			"get": {
				"tags": [
					"session"
				],
				"summary": "Current session",
				"produces": [
					"application/json"
				],
				"responses": {
					"200": {
						"description": "OK",
						"schema": {
							"$ref": "#/definitions/handler.sessionResponse"
						}
					}
				}
			}
		},
		"/panel/products": {
			"get": {
				"tags": [
					"products"
				],
				"summary": "List products",
				"produces": [
					"application/json"
				],
				"responses": {
					"200": {
						"description": "OK"
					},
					"401": {
						"description": "Unauthorized",
						"schema": {
							"$ref": "#/definitions/handler.errorResponse"
						}
					},
					"503": {
						"description": "Session loading",
						"schema": {
							"$ref": "#/definitions/handler.errorResponse"
						}
					}
				},
				"parameters": [
					{
						"in": "query",
						"name": "currency",
						"type": "string"
					}
				]
			},
			"post": {
				"tags": [
					"products"
				],
				"summary": "Create a product",
				"produces": [
					"application/json"
				],
				"responses": {
					"201": {
						"description": "Created"
					},
					"409": {
						"description": "Duplicate submission",
						"schema": {
							"$ref": "#/definitions/handler.errorResponse"
						}
					},
					"422": {
						"description": "Invalid form",
						"schema": {
							"$ref": "#/definitions/handler.errorResponse"
						}
					},
					"502": {
						"description": "Bad Gateway",
						"schema": {
							"$ref": "#/definitions/handler.errorResponse"
						}
					}
				},
				"parameters": [
					{
						"in": "header",
						"name": "Idempotency-Key",
						"type": "string"
					},
					{
						"in": "body",
						"name": "body",
						"required": true,
						"schema": {
							"$ref": "#/definitions/handler.productRequest"
						}
					}
				],
				"consumes": [
					"application/json"
				]
			}
		},
		"/panel/products/{id}": {
			"put": {
				"tags": [
					"products"
				],
				"summary": "Update a product",
				"description": "Replaces the product. exchangeRates must be sent in full; it is never filled from the global table.",
				"produces": [
					"application/json"
				],
				"responses": {
					"200": {
						"description": "OK"
					},
					"422": {
						"description": "Invalid form",
						"schema": {
							"$ref": "#/definitions/handler.errorResponse"
						}
					}
				},
				"parameters": [
					{
						"in": "path",
						"name": "id",
						"required": true,
						"type": "string"
					},
					{
						"in": "body",
						"name": "body",
						"required": true,
						"schema": {
							"$ref": "#/definitions/handler.productRequest"
						}
					}
				],
				"consumes": [
					"application/json"
				]
			},
			"delete": {
				"tags": [
					"products"
				],
				"summary": "Delete a product",
				"produces": [
					"application/json"
				],
				"responses": {
					"200": {
						"description": "OK"
					},
					"428": {
						"description": "Confirmation required",
						"schema": {
							"$ref": "#/definitions/handler.errorResponse"
						}
					},
					"502": {
						"description": "Bad Gateway",
						"schema": {
							"$ref": "#/definitions/handler.errorResponse"
						}
					}
				},
				"parameters": [
					{
						"in": "path",
						"name": "id",
						"required": true,
						"type": "string"
					},
					{
						"in": "query",
						"name": "confirm",
						"required": true,
						"type": "boolean"
					}
				]
			}
		},
		"/panel/categories": {
			"get": {
				"tags": [
					"categories"
				],
				"summary": "List categories",
				"produces": [
					"application/json"
				],
				"responses": {
					"200": {
						"description": "OK"
					},
					"401": {
						"description": "Unauthorized",
						"schema": {
							"$ref": "#/definitions/handler.errorResponse"
						}
					}
				}
			},
			"post": {
				"tags": [
					"categories"
				],
				"summary": "Create a category",
				"produces": [
					"application/json"
				],
				"responses": {
					"201": {
						"description": "Created"
					},
					"422": {
						"description": "Invalid form",
						"schema": {
							"$ref": "#/definitions/handler.errorResponse"
						}
					}
				},
				"parameters": [
					{
						"in": "header",
						"name": "Idempotency-Key",
						"type": "string"
					},
					{
						"in": "body",
						"name": "body",
						"required": true,
						"schema": {
							"$ref": "#/definitions/handler.categoryRequest"
						}
					}
				],
				"consumes": [
					"application/json"
				]
			}
		},
		"/panel/categories/{id}": {
			"put": {
				"tags": [
					"categories"
				],
				"summary": "Update a category",
				"produces": [
					"application/json"
				],
				"responses": {
					"200": {
						"description": "OK"
					}
				},
				"parameters": [
					{
						"in": "path",
						"name": "id",
						"required": true,
						"type": "string"
					},
					{
						"in": "body",
						"name": "body",
						"required": true,
						"schema": {
							"$ref": "#/definitions/handler.categoryRequest"
						}
					}
				],
				"consumes": [
					"application/json"
				]
			},
			"delete": {
				"tags": [
					"categories"
				],
				"summary": "Delete a category",
				"produces": [
					"application/json"
				],
				"responses": {
					"200": {
						"description": "OK"
					},
					"428": {
						"description": "Confirmation required",
						"schema": {
							"$ref": "#/definitions/handler.errorResponse"
						}
					},
					"502": {
						"description": "Bad Gateway",
						"schema": {
							"$ref": "#/definitions/handler.errorResponse"
						}
					}
				},
				"parameters": [
					{
						"in": "path",
						"name": "id",
						"required": true,
						"type": "string"
					},
					{
						"in": "query",
						"name": "confirm",
						"required": true,
						"type": "boolean"
					}
				]
			}
		},
		"/panel/settings/exchange-rates": {
			"get": {
				"tags": [
					"settings"
				],
				"summary": "Exchange-rate table",
				"produces": [
					"application/json"
				],
				"responses": {
					"200": {
						"description": "OK",
						"schema": {
							"$ref": "#/definitions/handler.ratesResponse"
						}
					}
				}
			},
			"put": {
				"tags": [
					"settings"
				],
				"summary": "Replace the exchange-rate table",
				"produces": [
					"application/json"
				],
				"responses": {
					"200": {
						"description": "OK",
						"schema": {
							"$ref": "#/definitions/handler.ratesResponse"
						}
					},
					"422": {
						"description": "Invalid rates",
						"schema": {
							"$ref": "#/definitions/handler.errorResponse"
						}
					}
				},
				"parameters": [
					{
						"in": "body",
						"name": "body",
						"required": true,
						"schema": {
							"$ref": "#/definitions/handler.ratesRequest"
						}
					}
				],
				"consumes": [
					"application/json"
				]
			}
		},
		"/panel/images/add-url": {
			"post": {
				"tags": [
					"images"
				],
				"summary": "Append an image URL",
				"produces": [
					"application/json"
				],
				"responses": {
					"200": {
						"description": "OK",
						"schema": {
							"$ref": "#/definitions/handler.imagesResponse"
						}
					}
				},
				"parameters": [
					{
						"in": "body",
						"name": "body",
						"required": true,
						"schema": {
							"$ref": "#/definitions/handler.addURLRequest"
						}
					}
				],
				"consumes": [
					"application/json"
				]
			}
		},
		"/panel/images/remove": {
			"post": {
				"tags": [
					"images"
				],
				"summary": "Remove an image",
				"produces": [
					"application/json"
				],
				"responses": {
					"200": {
						"description": "OK",
						"schema": {
							"$ref": "#/definitions/handler.imagesResponse"
						}
					}
				},
				"parameters": [
					{
						"in": "body",
						"name": "body",
						"required": true,
						"schema": {
							"$ref": "#/definitions/handler.removeRequest"
						}
					}
				],
				"consumes": [
					"application/json"
				]
			}
		},
		"/panel/images/reorder": {
			"post": {
				"tags": [
					"images"
				],
				"summary": "Move an image",
				"produces": [
					"application/json"
				],
				"responses": {
					"200": {
						"description": "OK",
						"schema": {
							"$ref": "#/definitions/handler.imagesResponse"
						}
					}
				},
				"parameters": [
					{
						"in": "body",
						"name": "body",
						"required": true,
						"schema": {
							"$ref": "#/definitions/handler.reorderRequest"
						}
					}
				],
				"consumes": [
					"application/json"
				]
			}
		},
		"/panel/images/normalize": {
			"post": {
				"tags": [
					"images"
				],
				"summary": "Normalize an image list",
				"produces": [
					"application/json"
				],
				"responses": {
					"200": {
						"description": "OK",
						"schema": {
							"$ref": "#/definitions/handler.imagesResponse"
						}
					}
				},
				"parameters": [
					{
						"in": "body",
						"name": "body",
						"required": true,
						"schema": {
							"$ref": "#/definitions/handler.normalizeRequest"
						}
					}
				],
				"consumes": [
					"application/json"
				]
			}
		},
		"/panel/images/upload": {
			"post": {
				"tags": [
					"images"
				],
				"summary": "Upload image files",
				"produces": [
					"application/json"
				],
				"responses": {
					"200": {
						"description": "OK",
						"schema": {
							"$ref": "#/definitions/handler.imagesResponse"
						}
					},
					"413": {
						"description": "Too large",
						"schema": {
							"$ref": "#/definitions/handler.errorResponse"
						}
					},
					"415": {
						"description": "Not an image",
						"schema": {
							"$ref": "#/definitions/handler.errorResponse"
						}
					}
				},
				"parameters": [
					{
						"in": "formData",
						"name": "images",
						"type": "array",
						"items": {
							"type": "string"
						}
					},
					{
						"in": "formData",
						"name": "files",
						"type": "file",
						"required": true
					}
				],
				"consumes": [
					"multipart/form-data"
				]
			}
		},
		"/panel/images/replace": {
			"post": {
				"tags": [
					"images"
				],
				"summary": "Replace one image with a file",
				"produces": [
					"application/json"
				],
				"responses": {
					"200": {
						"description": "OK",
						"schema": {
							"$ref": "#/definitions/handler.imagesResponse"
						}
					},
					"415": {
						"description": "Not an image",
						"schema": {
							"$ref": "#/definitions/handler.errorResponse"
						}
					}
				},
				"parameters": [
					{
						"in": "formData",
						"name": "images",
						"type": "array",
						"items": {
							"type": "string"
						}
					},
					{
						"in": "formData",
						"name": "index",
						"type": "integer",
						"required": true
					},
					{
						"in": "formData",
						"name": "file",
						"type": "file"
					}
				],
				"consumes": [
					"multipart/form-data"
				]
			}
		},
		"/health": {
			"get": {
				"tags": [
					"health"
				],
				"summary": "Liveness probe",
				"produces": [
					"application/json"
				],
				"responses": {
					"200": {
						"description": "OK"
					}
				}
			}
		},
		"/health/ready": {
			"get": {
				"tags": [
					"health"
				],
				"summary": "Readiness probe",
				"produces": [
					"application/json"
				],
				"responses": {
					"200": {
						"description": "OK"
					},
					"503": {
						"description": "Degraded"
					}
				}
			}
		}
	},
	"definitions": {
		"domain.User": {
			"type": "object",
			"properties": {
				"_id": {
					"type": "string"
				},
				"username": {
					"type": "string"
				},
				"role": {
					"type": "string"
				}
			}
		},
		"handler.errorResponse": {
			"type": "object",
			"properties": {
				"error": {
					"type": "string"
				},
				"fields": {
					"type": "object",
					"additionalProperties": {
						"type": "string"
					}
				}
			}
		},
		"handler.loginRequest": {
			"type": "object",
			"properties": {
				"username": {
					"type": "string"
				},
				"password": {
					"type": "string"
				}
			},
			"required": [
				"username",
				"password"
			]
		},
		"handler.loginResponse": {
			"type": "object",
			"properties": {
				"user": {
					"$ref": "#/definitions/domain.User"
				}
			}
		},
		"handler.sessionResponse": {
			"type": "object",
			"properties": {
				"loading": {
					"type": "boolean"
				},
				"loggedIn": {
					"type": "boolean"
				},
				"user": {
					"$ref": "#/definitions/domain.User"
				}
			}
		},
		"handler.productRequest": {
			"type": "object",
			"properties": {
				"name": {
					"type": "string"
				},
				"description": {
					"type": "string"
				},
				"category": {
					"type": "string"
				},
				"basePrice": {
					"type": "string",
					"example": "100"
				},
				"exchangeRates": {
					"type": "object",
					"additionalProperties": {
						"type": "string"
					}
				},
				"images": {
					"type": "array",
					"items": {
						"type": "string"
					}
				},
				"inStock": {
					"type": "boolean"
				},
				"featured": {
					"type": "boolean"
				}
			}
		},
		"handler.categoryRequest": {
			"type": "object",
			"properties": {
				"name": {
					"type": "string"
				},
				"icon": {
					"type": "string"
				},
				"description": {
					"type": "string"
				}
			}
		},
		"handler.ratesRequest": {
			"type": "object",
			"properties": {
				"rates": {
					"type": "object",
					"additionalProperties": {
						"type": "string"
					}
				}
			},
			"required": [
				"rates"
			]
		},
		"handler.ratesResponse": {
			"type": "object",
			"properties": {
				"rates": {
					"type": "object",
					"additionalProperties": {
						"type": "string"
					}
				}
			}
		},
		"handler.addURLRequest": {
			"type": "object",
			"properties": {
				"images": {
					"type": "array",
					"items": {
						"type": "string"
					}
				},
				"url": {
					"type": "string"
				}
			},
			"required": [
				"url"
			]
		},
		"handler.removeRequest": {
			"type": "object",
			"properties": {
				"images": {
					"type": "array",
					"items": {
						"type": "string"
					}
				},
				"index": {
					"type": "integer"
				}
			}
		},
		"handler.reorderRequest": {
			"type": "object",
			"properties": {
				"images": {
					"type": "array",
					"items": {
						"type": "string"
					}
				},
				"from": {
					"type": "integer"
				},
				"to": {
					"type": "integer"
				}
			}
		},
		"handler.normalizeRequest": {
			"type": "object",
			"properties": {
				"images": {
					"type": "array",
					"items": {
						"type": "string"
					}
				}
			}
		},
		"handler.imagesResponse": {
			"type": "object",
			"properties": {
				"images": {
					"type": "array",
					"items": {
						"type": "string"
					}
				},
				"primary": {
					"type": "string"
				}
			}
		}
	}
}`

// SwaggerInfo holds exported Swagger Info so clients can modify it
var SwaggerInfo = &swag.Spec{
	Version:          "1.0",
	Host:             "",
	BasePath:         "/",
	Schemes:          []string{},
	Title:            "Store Admin Panel API",
	Description:      "Operator panel for the store catalog: session, products, categories, exchange rates and image lists.",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
	LeftDelim:        "{{",
	RightDelim:       "}}",
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}

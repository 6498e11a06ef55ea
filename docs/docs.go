// Package docs registers the OpenAPI description served at /swagger.
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
        "/resolve": {
            "get": {
                "produces": ["application/json"],
                "summary": "Resolve a single address line",
                "parameters": [
                    {"type": "string", "description": "raw address line", "name": "q", "in": "query", "required": true}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/models.AddressRecord"}},
                    "400": {"description": "Bad Request", "schema": {"type": "object", "additionalProperties": {"type": "string"}}}
                }
            }
        },
        "/selections": {
            "post": {
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "summary": "Assemble a record from a popup selection",
                "parameters": [
                    {"description": "popup outcome", "name": "outcome", "in": "body", "required": true, "schema": {"$ref": "#/definitions/models.SelectionOutcome"}}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/models.AddressRecord"}},
                    "204": {"description": "No Content"},
                    "400": {"description": "Bad Request", "schema": {"type": "object", "additionalProperties": {"type": "string"}}}
                }
            }
        },
        "/batches": {
            "post": {
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "summary": "Start a batch run",
                "parameters": [
                    {"description": "address lines", "name": "request", "in": "body", "required": true, "schema": {"$ref": "#/definitions/handler.BatchRequest"}}
                ],
                "responses": {
                    "202": {"description": "Accepted", "schema": {"type": "object", "additionalProperties": {"type": "string"}}},
                    "400": {"description": "Bad Request", "schema": {"type": "object", "additionalProperties": {"type": "string"}}},
                    "409": {"description": "Conflict", "schema": {"type": "object", "additionalProperties": {"type": "string"}}}
                }
            }
        },
        "/batches/{id}": {
            "get": {
                "produces": ["application/json"],
                "summary": "Get a batch run with its progress and records",
                "parameters": [
                    {"type": "string", "description": "run id", "name": "id", "in": "path", "required": true}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/models.BatchRun"}},
                    "404": {"description": "Not Found", "schema": {"type": "object", "additionalProperties": {"type": "string"}}}
                }
            }
        },
        "/batches/{id}/export": {
            "get": {
                "produces": ["text/csv", "application/json"],
                "summary": "Download the records of a finished batch run",
                "parameters": [
                    {"type": "string", "description": "run id", "name": "id", "in": "path", "required": true},
                    {"type": "string", "description": "csv or json", "name": "format", "in": "query"},
                    {"type": "string", "description": "high, medium, low or none", "name": "confidence", "in": "query"}
                ],
                "responses": {
                    "200": {"description": "OK"},
                    "400": {"description": "Bad Request", "schema": {"type": "object", "additionalProperties": {"type": "string"}}},
                    "404": {"description": "Not Found", "schema": {"type": "object", "additionalProperties": {"type": "string"}}},
                    "409": {"description": "Conflict", "schema": {"type": "object", "additionalProperties": {"type": "string"}}}
                }
            }
        }
    },
    "definitions": {
        "handler.BatchRequest": {
            "type": "object",
            "properties": {
                "lines": {"type": "array", "items": {"type": "string"}},
                "text": {"type": "string"}
            }
        },
        "models.AddressRecord": {
            "type": "object",
            "properties": {
                "address_code": {"type": "string"},
                "city": {"type": "string"},
                "district": {"type": "string"},
                "lat": {"type": "string"},
                "lon": {"type": "string"},
                "lot_address": {"type": "string"},
                "match_confidence": {"type": "string", "enum": ["high", "medium", "low", "none"]},
                "original_address": {"type": "string"},
                "road_address": {"type": "string"},
                "zipcode": {"type": "string"}
            }
        },
        "models.BatchRun": {
            "type": "object",
            "properties": {
                "created_at": {"type": "string"},
                "finished_at": {"type": "string"},
                "id": {"type": "string"},
                "progress": {"$ref": "#/definitions/models.Progress"},
                "records": {"type": "array", "items": {"$ref": "#/definitions/models.AddressRecord"}},
                "status": {"type": "string", "enum": ["running", "completed"]},
                "summary": {"$ref": "#/definitions/models.Summary"}
            }
        },
        "models.Progress": {
            "type": "object",
            "properties": {
                "current": {"type": "integer"},
                "total": {"type": "integer"}
            }
        },
        "models.Summary": {
            "type": "object",
            "properties": {
                "high": {"type": "integer"},
                "low": {"type": "integer"},
                "medium": {"type": "integer"},
                "none": {"type": "integer"}
            }
        },
        "models.Selection": {
            "type": "object",
            "properties": {
                "address": {"type": "string"},
                "bcode": {"type": "string"},
                "jibunAddress": {"type": "string"},
                "roadAddress": {"type": "string"},
                "sido": {"type": "string"},
                "sigungu": {"type": "string"},
                "zonecode": {"type": "string"}
            }
        },
        "models.SelectionOutcome": {
            "type": "object",
            "properties": {
                "cancelled": {"type": "boolean"},
                "selection": {"$ref": "#/definitions/models.Selection"}
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
	Title:            "Address Resolver API",
	Description:      "Resolves free-text Korean addresses into lot/road addresses, postal codes and coordinates.",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
	LeftDelim:        "{{",
	RightDelim:       "}}",
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}

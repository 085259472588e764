// Package docs registers the Swagger document served under /swagger/.
package docs

import "github.com/swaggo/swag"

const InstanceName = "analytics"

const docTemplate = `{
    "schemes": {{ marshal .Schemes }},
    "swagger": "2.0",
    "info": {
        "description": "{{escape .Description}}",
        "title": "{{.Title}}",
        "contact": {
            "name": "API Support",
            "url": "http://www.swagger.io/support",
            "email": "support@swagger.io"
        },
        "license": {
            "name": "Apache 2.0",
            "url": "http://www.apache.org/licenses/LICENSE-2.0.html"
        },
        "version": "{{.Version}}"
    },
    "host": "{{.Host}}",
    "basePath": "{{.BasePath}}",
    "paths": {
        "/health": {
            "get": {
                "description": "Returns the service status and the loaded dataset",
                "produces": ["application/json"],
                "tags": ["Health"],
                "summary": "Health Check",
                "responses": {
                    "200": {"description": "OK", "schema": {"type": "object", "additionalProperties": true}}
                }
            }
        },
        "/queries": {
            "get": {
                "description": "Lists the canned queries in menu order",
                "produces": ["application/json"],
                "tags": ["Queries"],
                "summary": "Query menu",
                "responses": {
                    "200": {"description": "OK", "schema": {"type": "object", "additionalProperties": true}}
                }
            }
        },
        "/queries/{name}": {
            "get": {
                "description": "Runs one catalog query over the full dataset",
                "produces": ["application/json"],
                "tags": ["Queries"],
                "summary": "Run a query",
                "parameters": [
                    {"type": "string", "description": "Query slug, e.g. top_customers", "name": "name", "in": "path", "required": true}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"type": "object", "additionalProperties": true}},
                    "404": {"description": "Not Found", "schema": {"type": "object", "additionalProperties": {"type": "string"}}},
                    "422": {"description": "Unprocessable Entity", "schema": {"type": "object", "additionalProperties": {"type": "string"}}},
                    "501": {"description": "Not Implemented", "schema": {"type": "object", "additionalProperties": {"type": "string"}}}
                }
            }
        },
        "/overview": {
            "get": {
                "description": "KPI tiles over the full dataset with its source and date range",
                "produces": ["application/json"],
                "tags": ["Dashboard"],
                "summary": "Dataset overview",
                "responses": {
                    "200": {"description": "OK", "schema": {"type": "object", "additionalProperties": true}}
                }
            }
        },
        "/dashboard": {
            "get": {
                "description": "Recomputes the KPI row and every panel over the filtered bookings",
                "produces": ["application/json"],
                "tags": ["Dashboard"],
                "summary": "Filtered dashboard",
                "parameters": [
                    {"type": "string", "description": "First day, YYYY-MM-DD", "name": "from", "in": "query"},
                    {"type": "string", "description": "Last day, YYYY-MM-DD", "name": "to", "in": "query"},
                    {"type": "array", "items": {"type": "string"}, "collectionFormat": "multi", "description": "Vehicle types", "name": "vehicle_type", "in": "query"},
                    {"type": "array", "items": {"type": "string"}, "collectionFormat": "multi", "description": "Booking statuses", "name": "status", "in": "query"},
                    {"type": "array", "items": {"type": "string"}, "collectionFormat": "multi", "description": "Payment methods", "name": "payment_method", "in": "query"}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"type": "object", "additionalProperties": true}},
                    "422": {"description": "Unprocessable Entity", "schema": {"type": "object", "additionalProperties": true}}
                }
            },
            "post": {
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["Dashboard"],
                "summary": "Filtered dashboard from a JSON filter",
                "parameters": [
                    {"description": "Filter", "name": "request", "in": "body", "required": true, "schema": {"$ref": "#/definitions/dto.FilterRequest"}}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"type": "object", "additionalProperties": true}},
                    "400": {"description": "Bad Request", "schema": {"type": "object", "additionalProperties": {"type": "string"}}},
                    "422": {"description": "Unprocessable Entity", "schema": {"type": "object", "additionalProperties": true}}
                }
            }
        },
        "/dashboard/filters": {
            "get": {
                "description": "Date range and the distinct vehicle types, statuses and payment methods",
                "produces": ["application/json"],
                "tags": ["Dashboard"],
                "summary": "Filter options",
                "responses": {
                    "200": {"description": "OK", "schema": {"type": "object", "additionalProperties": true}}
                }
            }
        },
        "/insights": {
            "get": {
                "produces": ["application/json"],
                "tags": ["Insights"],
                "summary": "Business insights",
                "responses": {
                    "200": {"description": "OK", "schema": {"type": "object", "additionalProperties": true}}
                }
            }
        },
        "/ws/dashboard": {
            "get": {
                "description": "WebSocket. Send a filter as JSON, receive {\"dashboard\": ...} or {\"error\": ...}",
                "tags": ["Dashboard"],
                "summary": "Dashboard session",
                "responses": {}
            }
        }
    },
    "definitions": {
        "dto.FilterRequest": {
            "type": "object",
            "properties": {
                "from": {"type": "string"},
                "to": {"type": "string"},
                "vehicle_types": {"type": "array", "items": {"type": "string"}},
                "statuses": {"type": "array", "items": {"type": "string"}},
                "payment_methods": {"type": "array", "items": {"type": "string"}}
            }
        }
    }
}`

// SwaggerInfo holds exported Swagger Info so clients can modify it
var SwaggerInfo = &swag.Spec{
	Version:          "1.0",
	Host:             "localhost:8080",
	BasePath:         "/",
	Schemes:          []string{},
	Title:            "Ride Analytics API",
	Description:      "Canned queries, a filtered dashboard and business insights over one ride booking dataset.",
	InfoInstanceName: InstanceName,
	SwaggerTemplate:  docTemplate,
	LeftDelim:        "{{",
	RightDelim:       "}}",
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}

// Package docs registers the OpenAPI document served under /swagger/.
package docs

import "github.com/swaggo/swag"

const docTemplate = `{
    "schemes": {{ marshal .Schemes }},
    "swagger": "2.0",
    "info": {
        "description": "{{escape .Description}}",
        "title": "{{.Title}}",
        "version": "{{.Version}}"
    },
    "host": "{{.Host}}",
    "basePath": "{{.BasePath}}",
    "paths": {
        "/api/poems": {
            "get": {
                "produces": ["application/json"],
                "tags": ["poem-service"],
                "summary": "List recent public poems",
                "parameters": [
                    {"type": "integer", "description": "Maximum number of poems (max 100)", "name": "limit", "in": "query"}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/poem.ListPoemsResponse"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/ErrorResponse"}}
                }
            },
            "post": {
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["poem-service"],
                "summary": "Publish a poem under its own subdomain",
                "parameters": [
                    {"description": "Poem", "name": "request", "in": "body", "required": true, "schema": {"$ref": "#/definitions/poem.CreatePoemRequest"}}
                ],
                "responses": {
                    "201": {"description": "Created", "schema": {"$ref": "#/definitions/poem.CreatePoemResponse"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/ErrorResponse"}},
                    "409": {"description": "Conflict", "schema": {"$ref": "#/definitions/ErrorResponse"}},
                    "429": {"description": "Too Many Requests", "schema": {"$ref": "#/definitions/ErrorResponse"}}
                }
            }
        },
        "/api/poems/{id}/view": {
            "post": {
                "produces": ["application/json"],
                "tags": ["poem-service"],
                "summary": "Count one poem view",
                "parameters": [
                    {"type": "string", "description": "Poem id", "name": "id", "in": "path", "required": true}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/poem.IncrementViewsResponse"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/ErrorResponse"}}
                }
            }
        },
        "/api/generate-poem": {
            "post": {
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["poem-generator"],
                "summary": "Generate poem text from a title",
                "parameters": [
                    {"description": "Title", "name": "request", "in": "body", "required": true, "schema": {"$ref": "#/definitions/generator.GeneratePoemRequest"}}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/generator.GeneratePoemResponse"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/ErrorResponse"}},
                    "429": {"description": "Too Many Requests", "schema": {"$ref": "#/definitions/ErrorResponse"}},
                    "502": {"description": "Bad Gateway", "schema": {"$ref": "#/definitions/ErrorResponse"}}
                }
            }
        },
        "/api/sponsor/slots": {
            "get": {
                "produces": ["application/json"],
                "tags": ["slot-booking-service"],
                "summary": "List upcoming sponsor slots with prices",
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/slot.ListSlotsResponse"}},
                    "500": {"description": "Internal Server Error", "schema": {"$ref": "#/definitions/ErrorResponse"}}
                }
            }
        },
        "/sponsor/reserve": {
            "post": {
                "consumes": ["application/x-www-form-urlencoded", "application/json"],
                "produces": ["text/html", "application/json"],
                "tags": ["slot-booking-service"],
                "summary": "Reserve a date and redirect to checkout",
                "parameters": [
                    {"type": "string", "description": "Date as YYYY-MM-DD", "name": "date", "in": "formData", "required": true}
                ],
                "responses": {
                    "200": {"description": "JSON callers", "schema": {"$ref": "#/definitions/slot.ReserveSlotResponse"}},
                    "303": {"description": "Redirect to the payment link"},
                    "400": {"description": "Bad Request"},
                    "409": {"description": "Date already taken"}
                }
            }
        },
        "/sponsor/claim": {
            "post": {
                "consumes": ["application/x-www-form-urlencoded", "application/json"],
                "produces": ["text/html", "application/json"],
                "tags": ["slot-booking-service"],
                "summary": "Submit sponsor content for a paid slot",
                "parameters": [
                    {"type": "string", "name": "slot_id", "in": "formData", "required": true},
                    {"type": "string", "name": "claim_token", "in": "formData", "description": "Token issued at checkout; either this or payment_ref"},
                    {"type": "string", "name": "payment_ref", "in": "formData", "description": "Provider payment reference"},
                    {"type": "string", "name": "sponsor_name", "in": "formData", "required": true},
                    {"type": "string", "name": "headline", "in": "formData", "required": true},
                    {"type": "string", "name": "body", "in": "formData"},
                    {"type": "string", "name": "url", "in": "formData", "required": true},
                    {"type": "string", "name": "image_url", "in": "formData"}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/slot.ClaimSlotResponse"}},
                    "400": {"description": "Bad Request"},
                    "409": {"description": "Slot is not paid under this reference"}
                }
            }
        },
        "/sponsor/click": {
            "get": {
                "tags": ["slot-booking-service"],
                "summary": "Count a sponsor click and redirect to the sponsor",
                "parameters": [
                    {"type": "string", "description": "Slot id", "name": "slot", "in": "query"}
                ],
                "responses": {
                    "302": {"description": "Sponsor url with UTM parameters, or /"}
                }
            }
        },
        "/webhooks/payment": {
            "post": {
                "consumes": ["application/json"],
                "produces": ["text/plain"],
                "tags": ["payment-webhook-service"],
                "summary": "Payment provider callback",
                "parameters": [
                    {"type": "string", "description": "Hex HMAC-SHA256 of the raw body", "name": "X-Webhook-Signature", "in": "header", "required": true}
                ],
                "responses": {
                    "200": {"description": "ok"},
                    "400": {"description": "Invalid signature or payload", "schema": {"$ref": "#/definitions/ErrorResponse"}},
                    "422": {"description": "Missing or unknown slot", "schema": {"$ref": "#/definitions/ErrorResponse"}}
                }
            }
        }
    },
    "definitions": {
        "ErrorResponse": {
            "type": "object",
            "properties": {
                "code": {"type": "string"},
                "message": {"type": "string"}
            }
        },
        "poem.PoemResponse": {
            "type": "object",
            "properties": {
                "id": {"type": "string"},
                "title": {"type": "string"},
                "content": {"type": "string"},
                "subdomain": {"type": "string"},
                "theme": {"type": "string"},
                "style": {"type": "string"},
                "is_public": {"type": "boolean"},
                "views": {"type": "integer"},
                "created_at": {"type": "string", "format": "date-time"}
            }
        },
        "poem.ListPoemsResponse": {
            "type": "object",
            "properties": {
                "items": {"type": "array", "items": {"$ref": "#/definitions/poem.PoemResponse"}}
            }
        },
        "poem.CreatePoemRequest": {
            "type": "object",
            "properties": {
                "title": {"type": "string"},
                "content": {"type": "string"},
                "theme": {"type": "string"},
                "style": {"type": "string"},
                "is_public": {"type": "boolean"}
            }
        },
        "poem.CreatePoemResponse": {
            "type": "object",
            "properties": {
                "poem": {"$ref": "#/definitions/poem.PoemResponse"},
                "url": {"type": "string"}
            }
        },
        "poem.IncrementViewsResponse": {
            "type": "object",
            "properties": {
                "success": {"type": "boolean"}
            }
        },
        "generator.GeneratePoemRequest": {
            "type": "object",
            "properties": {
                "title": {"type": "string"}
            }
        },
        "generator.GeneratePoemResponse": {
            "type": "object",
            "properties": {
                "content": {"type": "string"},
                "theme": {"type": "string"},
                "style": {"type": "string"}
            }
        },
        "slot.SlotResponse": {
            "type": "object",
            "properties": {
                "id": {"type": "string"},
                "date": {"type": "string"},
                "status": {"type": "string"},
                "paid": {"type": "boolean"},
                "sponsor_name": {"type": "string"},
                "amount_cents": {"type": "integer"},
                "amount": {"type": "string"},
                "currency": {"type": "string"},
                "weekend": {"type": "boolean"}
            }
        },
        "slot.ListSlotsResponse": {
            "type": "object",
            "properties": {
                "today": {"type": "string"},
                "items": {"type": "array", "items": {"$ref": "#/definitions/slot.SlotResponse"}}
            }
        },
        "slot.ReserveSlotResponse": {
            "type": "object",
            "properties": {
                "slot_id": {"type": "string"},
                "date": {"type": "string"},
                "amount_cents": {"type": "integer"},
                "currency": {"type": "string"},
                "payment_url": {"type": "string"},
                "reserved_until": {"type": "string", "format": "date-time"},
                "claim_token": {"type": "string"}
            }
        },
        "slot.ClaimSlotResponse": {
            "type": "object",
            "properties": {
                "slot_id": {"type": "string"},
                "date": {"type": "string"},
                "status": {"type": "string"}
            }
        }
    }
}`

// SwaggerInfo holds exported Swagger Info so clients can modify it.
var SwaggerInfo = &swag.Spec{
	Version:          "1.0",
	Host:             "",
	BasePath:         "/",
	Schemes:          []string{},
	Title:            "poemclub API",
	Description:      "Poems on their own subdomains, with one sponsor per day.",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
	LeftDelim:        "{{",
	RightDelim:       "}}",
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}

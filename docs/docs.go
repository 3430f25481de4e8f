// Package docs holds the OpenAPI document served at /swagger.
// Regenerate with: swag init -g cmd/main.go -o docs
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
        "/health": {
            "get": {"produces": ["application/json"], "tags": ["system"], "summary": "Health check",
                "responses": {"200": {"description": "OK", "schema": {"type": "object", "additionalProperties": {"type": "string"}}}}}
        },
        "/auth/login/{role}": {
            "post": {"consumes": ["application/json"], "produces": ["application/json"], "tags": ["auth"], "summary": "Log in",
                "parameters": [
                    {"enum": ["homeowner", "guest", "technician"], "type": "string", "name": "role", "in": "path", "required": true},
                    {"name": "body", "in": "body", "required": true, "schema": {"$ref": "#/definitions/handlers.LoginRequest"}}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/service.LoginResult"}},
                    "400": {"description": "Bad Request"}, "401": {"description": "Unauthorized"}, "404": {"description": "Not Found"}
                }}
        },
        "/auth/sign-up": {
            "post": {"consumes": ["application/json"], "produces": ["application/json"], "tags": ["auth"], "summary": "Sign up",
                "parameters": [{"name": "body", "in": "body", "required": true, "schema": {"$ref": "#/definitions/handlers.LoginRequest"}}],
                "responses": {"201": {"description": "Created"}, "400": {"description": "Bad Request"}}}
        },
        "/auth/logout": {
            "post": {"security": [{"BearerAuth": []}], "produces": ["application/json"], "tags": ["auth"], "summary": "Log out",
                "responses": {"200": {"description": "OK"}, "401": {"description": "Unauthorized"}}}
        },
        "/api/v1/dashboard/state": {
            "get": {"security": [{"BearerAuth": []}], "produces": ["application/json"], "tags": ["dashboard"], "summary": "Get displayed state",
                "responses": {"200": {"description": "OK", "schema": {"$ref": "#/definitions/models.DisplayedSystemState"}}, "409": {"description": "Conflict"}}}
        },
        "/api/v1/dashboard/adjust": {
            "post": {"security": [{"BearerAuth": []}], "consumes": ["application/json"], "produces": ["application/json"], "tags": ["dashboard"], "summary": "Adjust target temperature",
                "parameters": [{"name": "body", "in": "body", "required": true, "schema": {"$ref": "#/definitions/handlers.AdjustRequest"}}],
                "responses": {"200": {"description": "OK", "schema": {"$ref": "#/definitions/models.DisplayedSystemState"}}, "400": {"description": "Bad Request"}, "409": {"description": "Conflict"}}}
        },
        "/api/v1/dashboard/profiles/{id}/apply": {
            "post": {"security": [{"BearerAuth": []}], "produces": ["application/json"], "tags": ["dashboard"], "summary": "Apply a profile",
                "parameters": [{"type": "integer", "name": "id", "in": "path", "required": true}],
                "responses": {"200": {"description": "OK", "schema": {"$ref": "#/definitions/models.DisplayedSystemState"}}, "404": {"description": "Not Found"}, "409": {"description": "Conflict"}}}
        },
        "/api/v1/dashboard/refresh": {
            "post": {"security": [{"BearerAuth": []}], "produces": ["application/json"], "tags": ["dashboard"], "summary": "Refresh now",
                "responses": {"200": {"description": "OK", "schema": {"$ref": "#/definitions/models.DisplayedSystemState"}}, "502": {"description": "Bad Gateway"}}}
        },
        "/api/v1/ws": {
            "get": {"security": [{"BearerAuth": []}], "tags": ["dashboard"], "summary": "Displayed state stream",
                "parameters": [
                    {"type": "string", "name": "interval", "in": "query"},
                    {"type": "integer", "name": "interval_ms", "in": "query"}
                ],
                "responses": {"101": {"description": "Switching Protocols"}, "409": {"description": "Conflict"}}}
        },
        "/api/v1/schedules": {
            "get": {"security": [{"BearerAuth": []}], "produces": ["application/json"], "tags": ["schedules"], "summary": "List schedules",
                "responses": {"200": {"description": "OK", "schema": {"type": "array", "items": {"$ref": "#/definitions/models.ScheduleRow"}}}}},
            "post": {"security": [{"BearerAuth": []}], "consumes": ["application/json"], "produces": ["application/json"], "tags": ["schedules"], "summary": "Create schedule",
                "parameters": [{"name": "body", "in": "body", "required": true, "schema": {"$ref": "#/definitions/service.ScheduleInput"}}],
                "responses": {"201": {"description": "Created"}, "400": {"description": "Bad Request"}, "403": {"description": "Forbidden"}}}
        },
        "/api/v1/schedules/{id}": {
            "put": {"security": [{"BearerAuth": []}], "consumes": ["application/json"], "produces": ["application/json"], "tags": ["schedules"], "summary": "Replace schedule",
                "parameters": [
                    {"type": "integer", "name": "id", "in": "path", "required": true},
                    {"name": "body", "in": "body", "required": true, "schema": {"$ref": "#/definitions/service.ScheduleInput"}}
                ],
                "responses": {"200": {"description": "OK"}}},
            "delete": {"security": [{"BearerAuth": []}], "tags": ["schedules"], "summary": "Delete schedule",
                "parameters": [{"type": "integer", "name": "id", "in": "path", "required": true}],
                "responses": {"200": {"description": "OK"}}}
        },
        "/api/v1/profiles": {
            "get": {"security": [{"BearerAuth": []}], "produces": ["application/json"], "tags": ["profiles"], "summary": "List profiles",
                "responses": {"200": {"description": "OK", "schema": {"type": "array", "items": {"$ref": "#/definitions/models.Profile"}}}}},
            "post": {"security": [{"BearerAuth": []}], "consumes": ["application/json"], "tags": ["profiles"], "summary": "Create profile",
                "parameters": [{"name": "body", "in": "body", "required": true, "schema": {"$ref": "#/definitions/service.ProfileInput"}}],
                "responses": {"201": {"description": "Created"}, "400": {"description": "Bad Request"}}}
        },
        "/api/v1/profiles/{id}": {
            "put": {"security": [{"BearerAuth": []}], "consumes": ["application/json"], "tags": ["profiles"], "summary": "Replace profile",
                "parameters": [
                    {"type": "integer", "name": "id", "in": "path", "required": true},
                    {"name": "body", "in": "body", "required": true, "schema": {"$ref": "#/definitions/service.ProfileInput"}}
                ],
                "responses": {"200": {"description": "OK"}}},
            "delete": {"security": [{"BearerAuth": []}], "tags": ["profiles"], "summary": "Delete profile",
                "parameters": [{"type": "integer", "name": "id", "in": "path", "required": true}],
                "responses": {"200": {"description": "OK"}}}
        },
        "/api/v1/guests": {
            "get": {"security": [{"BearerAuth": []}], "tags": ["access"], "summary": "List guests", "responses": {"200": {"description": "OK"}}},
            "post": {"security": [{"BearerAuth": []}], "tags": ["access"], "summary": "Create guest",
                "parameters": [{"name": "body", "in": "body", "required": true, "schema": {"$ref": "#/definitions/service.GuestInput"}}],
                "responses": {"201": {"description": "Created"}}}
        },
        "/api/v1/guests/{id}": {
            "delete": {"security": [{"BearerAuth": []}], "tags": ["access"], "summary": "Delete guest",
                "parameters": [{"type": "integer", "name": "id", "in": "path", "required": true}],
                "responses": {"200": {"description": "OK"}}}
        },
        "/api/v1/technicians": {
            "get": {"security": [{"BearerAuth": []}], "tags": ["access"], "summary": "List technicians", "responses": {"200": {"description": "OK"}}}
        },
        "/api/v1/technician-access": {
            "get": {"security": [{"BearerAuth": []}], "tags": ["access"], "summary": "List technician access windows", "responses": {"200": {"description": "OK"}}},
            "post": {"security": [{"BearerAuth": []}], "tags": ["access"], "summary": "Grant technician access",
                "parameters": [{"name": "body", "in": "body", "required": true, "schema": {"$ref": "#/definitions/service.AccessGrantInput"}}],
                "responses": {"201": {"description": "Created"}, "400": {"description": "Bad Request"}}}
        },
        "/api/v1/technician-access/{id}": {
            "delete": {"security": [{"BearerAuth": []}], "tags": ["access"], "summary": "Revoke technician access",
                "parameters": [{"type": "integer", "name": "id", "in": "path", "required": true}],
                "responses": {"200": {"description": "OK"}}}
        },
        "/api/v1/diagnostics": {
            "get": {"security": [{"BearerAuth": []}], "tags": ["diagnostics"], "summary": "List diagnostic logs", "responses": {"200": {"description": "OK"}}},
            "post": {"security": [{"BearerAuth": []}], "tags": ["diagnostics"], "summary": "Record a diagnostic",
                "parameters": [{"name": "body", "in": "body", "required": true, "schema": {"$ref": "#/definitions/service.DiagnosticInput"}}],
                "responses": {"201": {"description": "Created"}, "400": {"description": "Bad Request"}}}
        },
        "/api/v1/activity": {
            "get": {"security": [{"BearerAuth": []}], "produces": ["application/json"], "tags": ["activity"], "summary": "List local activity",
                "parameters": [
                    {"type": "string", "name": "from", "in": "query"},
                    {"type": "string", "name": "to", "in": "query"},
                    {"enum": ["SCHEDULE_APPLIED", "SCHEDULE_FAILED", "TARGET_SET", "TARGET_FAILED", "REFRESH_FAILED", "LOGIN", "LOGOUT"], "type": "string", "name": "type", "in": "query"}
                ],
                "responses": {"200": {"description": "count, events"}, "400": {"description": "Bad Request"}}}
        }
    },
    "definitions": {
        "handlers.LoginRequest": {"type": "object", "properties": {
            "username": {"type": "string", "example": "alice"},
            "password": {"type": "string", "example": "s3cret"},
            "pin": {"type": "string", "example": "1234"},
            "homeowner": {"type": "string", "example": "alice"}}},
        "handlers.AdjustRequest": {"type": "object", "required": ["delta"], "properties": {
            "delta": {"type": "integer", "maximum": 30, "minimum": -30, "example": 1}}},
        "service.LoginResult": {"type": "object", "properties": {
            "token": {"type": "string"}, "role": {"type": "string"}, "username": {"type": "string"}, "expires_at": {"type": "string"}}},
        "service.ScheduleInput": {"type": "object", "required": ["name", "start_time"], "properties": {
            "name": {"type": "string"}, "start_time": {"type": "string", "example": "07:00"}, "target_temp": {"type": "number", "example": 70}}},
        "service.ProfileInput": {"type": "object", "required": ["name"], "properties": {
            "name": {"type": "string"}, "target_temp": {"type": "number", "example": 68}}},
        "service.GuestInput": {"type": "object", "required": ["username", "pin"], "properties": {
            "username": {"type": "string"}, "pin": {"type": "string", "example": "1234"}}},
        "service.AccessGrantInput": {"type": "object", "required": ["technician_username", "start_time", "end_time"], "properties": {
            "technician_username": {"type": "string"}, "start_time": {"type": "string"}, "end_time": {"type": "string"}}},
        "service.DiagnosticInput": {"type": "object", "required": ["level", "message"], "properties": {
            "level": {"type": "string", "enum": ["INFO", "WARN", "ERROR"]}, "message": {"type": "string"}}},
        "models.ScheduleRow": {"type": "object", "properties": {
            "id": {"type": "integer"}, "name": {"type": "string"}, "start_time": {"type": "string"}, "target_temp": {"type": "number"}}},
        "models.Profile": {"type": "object", "properties": {
            "id": {"type": "integer"}, "homeowner_id": {"type": "integer"}, "name": {"type": "string"}, "target_temp": {"type": "number"}, "created_at": {"type": "string"}}},
        "models.DisplayedSystemState": {"type": "object", "properties": {
            "current_temp": {"type": "integer"}, "target_temp": {"type": "integer"},
            "hvac_mode": {"type": "string", "enum": ["heating", "cooling", "fan", "off"]},
            "indoor_humidity": {"type": "integer"}, "carbon_monoxide": {"type": "integer"},
            "energy_consumption": {"type": "number"}, "outdoor_temp": {"type": "integer"},
            "outdoor_humidity": {"type": "integer"}, "precipitation": {"type": "number"},
            "current_profile_id": {"type": "string"}, "pending_target": {"type": "integer"},
            "last_updated": {"type": "string"}}}
    },
    "securityDefinitions": {
        "BearerAuth": {"type": "apiKey", "name": "Authorization", "in": "header"}
    }
}`

// SwaggerInfo holds exported Swagger Info so clients can modify it
var SwaggerInfo = &swag.Spec{
	Version:          "1.0",
	Host:             "",
	BasePath:         "/",
	Schemes:          []string{},
	Title:            "Thermostat Dashboard Agent",
	Description:      "Keeps a smart-thermostat dashboard in sync with the backend: periodic refresh, due schedules, debounced target changes and a live state stream.",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}

// Package docs registers the OpenAPI description served under /swagger/.
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
        "/api/": {
            "get": {
                "produces": ["application/json"],
                "tags": ["meta"],
                "summary": "API banner",
                "responses": {"200": {"description": "OK", "schema": {"$ref": "#/definitions/handlers.MessageResponse"}}}
            }
        },
        "/api/register": {
            "post": {
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["auth"],
                "summary": "Register a new user",
                "parameters": [{"description": "New user", "name": "user", "in": "body", "required": true, "schema": {"$ref": "#/definitions/handlers.RegisterRequest"}}],
                "responses": {
                    "201": {"description": "Created", "schema": {"$ref": "#/definitions/handlers.MessageResponse"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/apierror.APIError"}}
                }
            }
        },
        "/api/login": {
            "post": {
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["auth"],
                "summary": "Authenticate user and return JWT token",
                "parameters": [{"description": "username and password", "name": "credentials", "in": "body", "required": true, "schema": {"$ref": "#/definitions/handlers.UserLogin"}}],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/handlers.LoginResult"}},
                    "400": {"description": "Inactive user", "schema": {"$ref": "#/definitions/apierror.APIError"}},
                    "401": {"description": "Invalid credentials", "schema": {"$ref": "#/definitions/apierror.APIError"}},
                    "429": {"description": "Too many failed attempts", "schema": {"$ref": "#/definitions/apierror.APIError"}}
                }
            }
        },
        "/api/me": {
            "get": {
                "security": [{"BearerAuth": []}],
                "produces": ["application/json"],
                "tags": ["auth"],
                "summary": "Current user",
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/handlers.MeResponse"}},
                    "401": {"description": "Unauthorized", "schema": {"$ref": "#/definitions/apierror.APIError"}}
                }
            }
        },
        "/api/productos": {
            "get": {
                "produces": ["application/json"],
                "tags": ["productos"],
                "summary": "List products",
                "parameters": [
                    {"minimum": 0, "type": "integer", "default": 0, "description": "Records to skip", "name": "skip", "in": "query"},
                    {"maximum": 3000, "minimum": 1, "type": "integer", "default": 1000, "description": "Maximum records", "name": "limit", "in": "query"},
                    {"type": "string", "description": "Case-insensitive search", "name": "q", "in": "query"}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"type": "array", "items": {"$ref": "#/definitions/models.Product"}}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/apierror.ValidationError"}}
                }
            },
            "post": {
                "security": [{"BearerAuth": []}],
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["productos"],
                "summary": "Create a new product",
                "parameters": [{"description": "Product to add", "name": "product", "in": "body", "required": true, "schema": {"$ref": "#/definitions/handlers.ProductRequest"}}],
                "responses": {
                    "201": {"description": "Created", "schema": {"$ref": "#/definitions/models.Product"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/apierror.ValidationError"}},
                    "401": {"description": "Unauthorized", "schema": {"$ref": "#/definitions/apierror.APIError"}}
                }
            }
        },
        "/api/productos/{id}": {
            "get": {
                "produces": ["application/json"],
                "tags": ["productos"],
                "summary": "Get product by ID",
                "parameters": [{"type": "string", "description": "Product ID", "name": "id", "in": "path", "required": true}],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/models.Product"}},
                    "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/apierror.APIError"}}
                }
            },
            "put": {
                "security": [{"BearerAuth": []}],
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["productos"],
                "summary": "Update a product",
                "parameters": [
                    {"type": "string", "description": "Product ID", "name": "id", "in": "path", "required": true},
                    {"description": "Fields to change", "name": "product", "in": "body", "required": true, "schema": {"$ref": "#/definitions/models.ProductPatch"}}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/models.Product"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/apierror.APIError"}},
                    "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/apierror.APIError"}}
                }
            },
            "delete": {
                "security": [{"BearerAuth": []}],
                "produces": ["application/json"],
                "tags": ["productos"],
                "summary": "Delete a product",
                "parameters": [{"type": "string", "description": "Product ID", "name": "id", "in": "path", "required": true}],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/handlers.MessageResponse"}},
                    "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/apierror.APIError"}}
                }
            }
        },
        "/api/contactos": {
            "get": {
                "produces": ["application/json"],
                "tags": ["contactos"],
                "summary": "List contacts",
                "parameters": [
                    {"minimum": 0, "type": "integer", "default": 0, "description": "Records to skip", "name": "skip", "in": "query"},
                    {"maximum": 3000, "minimum": 1, "type": "integer", "default": 1000, "description": "Maximum records", "name": "limit", "in": "query"},
                    {"type": "string", "description": "Case-insensitive search on nombre or correo", "name": "q", "in": "query"}
                ],
                "responses": {"200": {"description": "OK", "schema": {"type": "array", "items": {"$ref": "#/definitions/models.Contact"}}}}
            },
            "post": {
                "security": [{"BearerAuth": []}],
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["contactos"],
                "summary": "Create a contact",
                "parameters": [{"description": "Supplier or store", "name": "contact", "in": "body", "required": true, "schema": {"$ref": "#/definitions/handlers.ContactRequest"}}],
                "responses": {"201": {"description": "Created", "schema": {"$ref": "#/definitions/models.Contact"}}}
            }
        },
        "/api/contactos/{id}": {
            "get": {
                "produces": ["application/json"],
                "tags": ["contactos"],
                "summary": "Get contact by ID",
                "parameters": [{"type": "string", "description": "Contact ID", "name": "id", "in": "path", "required": true}],
                "responses": {"200": {"description": "OK", "schema": {"$ref": "#/definitions/models.Contact"}}}
            },
            "put": {
                "security": [{"BearerAuth": []}],
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["contactos"],
                "summary": "Update a contact",
                "parameters": [
                    {"type": "string", "description": "Contact ID", "name": "id", "in": "path", "required": true},
                    {"description": "Fields to change", "name": "contact", "in": "body", "required": true, "schema": {"$ref": "#/definitions/models.ContactPatch"}}
                ],
                "responses": {"200": {"description": "OK", "schema": {"$ref": "#/definitions/models.Contact"}}}
            },
            "delete": {
                "security": [{"BearerAuth": []}],
                "produces": ["application/json"],
                "tags": ["contactos"],
                "summary": "Delete a contact",
                "parameters": [{"type": "string", "description": "Contact ID", "name": "id", "in": "path", "required": true}],
                "responses": {"200": {"description": "OK", "schema": {"$ref": "#/definitions/handlers.MessageResponse"}}}
            }
        },
        "/api/configuracion": {
            "get": {
                "produces": ["application/json"],
                "tags": ["configuracion"],
                "summary": "Alert thresholds",
                "responses": {"200": {"description": "OK", "schema": {"$ref": "#/definitions/models.Configuration"}}}
            },
            "put": {
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["configuracion"],
                "summary": "Update alert thresholds",
                "parameters": [{"description": "Fields to change", "name": "configuration", "in": "body", "required": true, "schema": {"$ref": "#/definitions/models.ConfigurationPatch"}}],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/models.Configuration"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/apierror.APIError"}}
                }
            }
        },
        "/api/alertas": {
            "get": {
                "produces": ["application/json"],
                "tags": ["alertas"],
                "summary": "Current stock and expiration alerts",
                "responses": {"200": {"description": "OK", "schema": {"type": "array", "items": {"$ref": "#/definitions/models.Alert"}}}}
            }
        },
        "/api/alertas/resumen": {
            "get": {
                "produces": ["application/json"],
                "tags": ["alertas"],
                "summary": "Alert counts per kind",
                "responses": {"200": {"description": "OK", "schema": {"$ref": "#/definitions/alerts.Summary"}}}
            }
        },
        "/healthz": {
            "get": {
                "produces": ["application/json"],
                "tags": ["meta"],
                "summary": "Liveness probe",
                "responses": {"200": {"description": "OK", "schema": {"$ref": "#/definitions/handlers.HealthResponse"}}}
            }
        }
    },
    "definitions": {
        "alerts.Summary": {
            "type": "object",
            "properties": {
                "total_alertas": {"type": "integer"},
                "stock_cero": {"type": "integer"},
                "stock_bajo": {"type": "integer"},
                "proximo_vencer": {"type": "integer"},
                "vencidos": {"type": "integer"},
                "productos_afectados": {"type": "integer"}
            }
        },
        "apierror.APIError": {
            "type": "object",
            "properties": {"detail": {"type": "string"}}
        },
        "apierror.ValidationError": {
            "type": "object",
            "properties": {
                "detail": {"type": "string"},
                "fields": {"type": "object", "additionalProperties": {"type": "string"}}
            }
        },
        "handlers.ContactRequest": {
            "type": "object",
            "properties": {
                "nombre": {"type": "string"},
                "direccion": {"type": "string"},
                "telefono": {"type": "string"},
                "correo": {"type": "string"},
                "tipo": {"type": "string", "enum": ["Proveedor", "Tienda"]}
            }
        },
        "handlers.HealthResponse": {
            "type": "object",
            "properties": {"status": {"type": "string"}}
        },
        "handlers.LoginResult": {
            "type": "object",
            "properties": {
                "access_token": {"type": "string"},
                "token_type": {"type": "string"},
                "user": {"$ref": "#/definitions/handlers.LoginUser"}
            }
        },
        "handlers.LoginUser": {
            "type": "object",
            "properties": {
                "username": {"type": "string"},
                "nombre_completo": {"type": "string"}
            }
        },
        "handlers.MeResponse": {
            "type": "object",
            "properties": {
                "username": {"type": "string"},
                "nombre_completo": {"type": "string"},
                "activo": {"type": "boolean"}
            }
        },
        "handlers.MessageResponse": {
            "type": "object",
            "properties": {"message": {"type": "string"}}
        },
        "handlers.ProductRequest": {
            "type": "object",
            "properties": {
                "codigo": {"type": "string"},
                "descripcion": {"type": "string"},
                "unidad_venta": {"type": "string"},
                "stock_actual": {"type": "integer", "minimum": 0, "maximum": 2147483647},
                "precio_venta": {"type": "number", "minimum": 0},
                "fecha_ingreso": {"type": "string", "example": "2025-01-15"},
                "fecha_vencimiento": {"type": "string", "example": "2025-06-30"}
            }
        },
        "handlers.RegisterRequest": {
            "type": "object",
            "properties": {
                "username": {"type": "string", "minLength": 3},
                "nombre_completo": {"type": "string"},
                "password": {"type": "string", "minLength": 6, "maxLength": 72}
            }
        },
        "handlers.UserLogin": {
            "type": "object",
            "properties": {
                "username": {"type": "string"},
                "password": {"type": "string"}
            }
        },
        "models.Alert": {
            "type": "object",
            "properties": {
                "id": {"type": "string"},
                "codigo": {"type": "string"},
                "descripcion": {"type": "string"},
                "tipo_alerta": {"type": "string", "enum": ["stock_cero", "stock_bajo", "proximo_vencer"]},
                "stock_actual": {"type": "integer"},
                "fecha_vencimiento": {"type": "string"},
                "dias_para_vencer": {"type": "integer"}
            }
        },
        "models.Configuration": {
            "type": "object",
            "properties": {
                "id": {"type": "string"},
                "stock_bajo_limite": {"type": "integer"},
                "vencimiento_alerta_meses": {"type": "integer"},
                "updated_at": {"type": "string"}
            }
        },
        "models.ConfigurationPatch": {
            "type": "object",
            "properties": {
                "stock_bajo_limite": {"type": "integer", "minimum": 0},
                "vencimiento_alerta_meses": {"type": "integer", "minimum": 0}
            }
        },
        "models.Contact": {
            "type": "object",
            "properties": {
                "id": {"type": "string"},
                "nombre": {"type": "string"},
                "direccion": {"type": "string"},
                "telefono": {"type": "string"},
                "correo": {"type": "string"},
                "tipo": {"type": "string"},
                "created_at": {"type": "string"},
                "updated_at": {"type": "string"}
            }
        },
        "models.ContactPatch": {
            "type": "object",
            "properties": {
                "nombre": {"type": "string"},
                "direccion": {"type": "string"},
                "telefono": {"type": "string"},
                "correo": {"type": "string"},
                "tipo": {"type": "string", "enum": ["Proveedor", "Tienda"]}
            }
        },
        "models.Product": {
            "type": "object",
            "properties": {
                "id": {"type": "string"},
                "codigo": {"type": "string"},
                "descripcion": {"type": "string"},
                "unidad_venta": {"type": "string"},
                "stock_actual": {"type": "integer"},
                "precio_venta": {"type": "number"},
                "fecha_ingreso": {"type": "string"},
                "fecha_vencimiento": {"type": "string"},
                "created_at": {"type": "string"},
                "updated_at": {"type": "string"}
            }
        },
        "models.ProductPatch": {
            "type": "object",
            "properties": {
                "codigo": {"type": "string"},
                "descripcion": {"type": "string"},
                "unidad_venta": {"type": "string"},
                "stock_actual": {"type": "integer", "minimum": 0, "maximum": 2147483647},
                "precio_venta": {"type": "number", "minimum": 0},
                "fecha_ingreso": {"type": "string"},
                "fecha_vencimiento": {"type": "string"}
            }
        }
    },
    "securityDefinitions": {
        "BearerAuth": {
            "type": "apiKey",
            "name": "Authorization",
            "in": "header"
        }
    }
}`

// SwaggerInfo holds exported Swagger Info so clients can modify it
var SwaggerInfo = &swag.Spec{
	Version:          "1.0",
	Host:             "",
	BasePath:         "/",
	Schemes:          []string{},
	Title:            "API de Gestión de Inventario",
	Description:      "REST API for products, contacts, alert thresholds and stock alerts.",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
	LeftDelim:        "{{",
	RightDelim:       "}}",
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}

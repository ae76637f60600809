// Package docs holds the OpenAPI document served at /swagger. Keep it in step
// with the handler annotations when routes change.
package docs

import "github.com/swaggo/swag"

const docTemplate = `{
    "schemes": {{ marshal .Schemes }},
    "swagger": "2.0",
    "info": {
        "description": "{{escape .Description}}",
        "title": "{{.Title}}",
        "contact": {
            "name": "API Support",
            "email": "support@example.com"
        },
        "license": {
            "name": "MIT",
            "url": "https://opensource.org/licenses/MIT"
        },
        "version": "{{.Version}}"
    },
    "host": "{{.Host}}",
    "basePath": "{{.BasePath}}",
    "paths": {
        "/": {
            "get": {
                "description": "Plain-text liveness check used by the kiosk and the hosting platform",
                "produces": [
                    "text/plain"
                ],
                "tags": [
                    "health"
                ],
                "summary": "Liveness string",
                "responses": {
                    "200": {
                        "description": "Print kiosk backend is running",
                        "schema": {
                            "type": "string"
                        }
                    }
                }
            }
        },
        "/create-order": {
            "post": {
                "description": "Uploads a PDF, prices it by page count, copies and colour mode, stores it and opens a Yoco checkout. The returned code is the customer's pickup code.",
                "consumes": [
                    "multipart/form-data"
                ],
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "orders"
                ],
                "summary": "Create a print order",
                "parameters": [
                    {
                        "type": "file",
                        "description": "PDF to print",
                        "name": "file",
                        "in": "formData",
                        "required": true
                    },
                    {
                        "type": "string",
                        "description": "bw or color (default bw)",
                        "name": "color_mode",
                        "in": "formData"
                    },
                    {
                        "type": "string",
                        "description": "Number of copies (default 1, at most MAX_COPIES)",
                        "name": "copies",
                        "in": "formData"
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/models.CreateOrderResponse"
                        }
                    },
                    "400": {
                        "description": "Bad Request",
                        "schema": {
                            "$ref": "#/definitions/models.ErrorResponse"
                        }
                    },
                    "429": {
                        "description": "Too Many Requests",
                        "schema": {
                            "$ref": "#/definitions/models.ErrorResponse"
                        }
                    },
                    "500": {
                        "description": "Internal Server Error",
                        "schema": {
                            "$ref": "#/definitions/models.ErrorResponse"
                        }
                    }
                }
            }
        },
        "/create-order-test": {
            "post": {
                "description": "Parses the same multipart form as /create-order and echoes what it received. Nothing is stored and no checkout is created.",
                "consumes": [
                    "multipart/form-data"
                ],
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "diagnostics"
                ],
                "summary": "Echo a create-order form",
                "parameters": [
                    {
                        "type": "file",
                        "description": "Any file",
                        "name": "file",
                        "in": "formData"
                    },
                    {
                        "type": "string",
                        "description": "Echoed as sent",
                        "name": "color_mode",
                        "in": "formData"
                    },
                    {
                        "type": "string",
                        "description": "Echoed as sent",
                        "name": "copies",
                        "in": "formData"
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/models.CreateOrderEchoResponse"
                        }
                    },
                    "400": {
                        "description": "Bad Request",
                        "schema": {
                            "$ref": "#/definitions/models.ErrorResponse"
                        }
                    }
                }
            }
        },
        "/health": {
            "get": {
                "description": "Returns the health status of the API",
                "consumes": [
                    "application/json"
                ],
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "health"
                ],
                "summary": "Health check",
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/models.HealthResponse"
                        }
                    }
                }
            }
        },
        "/orders/{code}": {
            "get": {
                "description": "Returns the payment status of the most recent order with the given pickup code. Used by the kiosk after the checkout redirect.",
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "orders"
                ],
                "summary": "Get order status",
                "parameters": [
                    {
                        "type": "string",
                        "description": "Pickup code",
                        "name": "code",
                        "in": "path",
                        "required": true
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/models.OrderStatusResponse"
                        }
                    },
                    "400": {
                        "description": "Bad Request",
                        "schema": {
                            "$ref": "#/definitions/models.ErrorResponse"
                        }
                    },
                    "404": {
                        "description": "Not Found",
                        "schema": {
                            "$ref": "#/definitions/models.ErrorResponse"
                        }
                    },
                    "500": {
                        "description": "Internal Server Error",
                        "schema": {
                            "$ref": "#/definitions/models.ErrorResponse"
                        }
                    }
                }
            }
        },
        "/staff/orders/{code}": {
            "get": {
                "security": [
                    {
                        "Bearer": []
                    }
                ],
                "description": "Returns the full order for a pickup code with a short-lived download link to the stored PDF. When several orders share a code the most recent is returned.",
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "staff"
                ],
                "summary": "Look up an order for pickup",
                "parameters": [
                    {
                        "type": "string",
                        "description": "Pickup code",
                        "name": "code",
                        "in": "path",
                        "required": true
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/models.StaffOrderResponse"
                        }
                    },
                    "400": {
                        "description": "Bad Request",
                        "schema": {
                            "$ref": "#/definitions/models.ErrorResponse"
                        }
                    },
                    "401": {
                        "description": "Unauthorized",
                        "schema": {
                            "$ref": "#/definitions/models.ErrorResponse"
                        }
                    },
                    "404": {
                        "description": "Not Found",
                        "schema": {
                            "$ref": "#/definitions/models.ErrorResponse"
                        }
                    },
                    "500": {
                        "description": "Internal Server Error",
                        "schema": {
                            "$ref": "#/definitions/models.ErrorResponse"
                        }
                    }
                }
            }
        },
        "/test": {
            "post": {
                "description": "Connectivity check for the kiosk front-end. Any JSON object sent is returned under body.",
                "consumes": [
                    "application/json"
                ],
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "diagnostics"
                ],
                "summary": "Echo a JSON body",
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/models.EchoResponse"
                        }
                    }
                }
            }
        },
        "/webhook/yoco": {
            "post": {
                "description": "Receives Yoco payment events. A succeeded event marks the matching order paid; any other status is acknowledged and ignored. Event authenticity is not verified.",
                "consumes": [
                    "application/json"
                ],
                "produces": [
                    "text/plain"
                ],
                "tags": [
                    "webhooks"
                ],
                "summary": "Yoco payment webhook",
                "parameters": [
                    {
                        "description": "Yoco event",
                        "name": "event",
                        "in": "body",
                        "required": true,
                        "schema": {
                            "$ref": "#/definitions/models.YocoWebhookEvent"
                        }
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK or Ignored",
                        "schema": {
                            "type": "string"
                        }
                    },
                    "400": {
                        "description": "Missing checkout id",
                        "schema": {
                            "type": "string"
                        }
                    },
                    "404": {
                        "description": "Order not found",
                        "schema": {
                            "type": "string"
                        }
                    },
                    "500": {
                        "description": "Failed to update order",
                        "schema": {
                            "type": "string"
                        }
                    }
                }
            }
        }
    },
    "definitions": {
        "models.ColorMode": {
            "type": "string",
            "enum": [
                "bw",
                "color"
            ],
            "x-enum-varnames": [
                "ColorModeBW",
                "ColorModeColor"
            ]
        },
        "models.CreateOrderEchoResponse": {
            "type": "object",
            "properties": {
                "color_mode": {
                    "type": "string"
                },
                "copies": {
                    "type": "string"
                },
                "file_name": {
                    "type": "string"
                },
                "file_size": {
                    "type": "integer"
                },
                "success": {
                    "type": "boolean"
                }
            }
        },
        "models.CreateOrderResponse": {
            "type": "object",
            "properties": {
                "amount_cents": {
                    "type": "integer"
                },
                "code": {
                    "type": "string"
                },
                "copies": {
                    "type": "integer"
                },
                "pages": {
                    "type": "integer"
                },
                "payUrl": {
                    "type": "string"
                },
                "success": {
                    "type": "boolean"
                }
            }
        },
        "models.EchoResponse": {
            "type": "object",
            "properties": {
                "body": {
                    "type": "object",
                    "additionalProperties": {}
                },
                "message": {
                    "type": "string"
                },
                "success": {
                    "type": "boolean"
                }
            }
        },
        "models.ErrorResponse": {
            "type": "object",
            "properties": {
                "error": {
                    "type": "string"
                },
                "message": {
                    "type": "string"
                },
                "success": {
                    "type": "boolean"
                }
            }
        },
        "models.HealthResponse": {
            "type": "object",
            "properties": {
                "status": {
                    "type": "string"
                }
            }
        },
        "models.OrderStatus": {
            "type": "string",
            "enum": [
                "created",
                "pending_payment",
                "paid"
            ],
            "x-enum-varnames": [
                "StatusCreated",
                "StatusPendingPayment",
                "StatusPaid"
            ]
        },
        "models.OrderStatusResponse": {
            "type": "object",
            "properties": {
                "amount_cents": {
                    "type": "integer"
                },
                "code": {
                    "type": "string"
                },
                "copies": {
                    "type": "integer"
                },
                "pages": {
                    "type": "integer"
                },
                "paid_at": {
                    "type": "string"
                },
                "status": {
                    "$ref": "#/definitions/models.OrderStatus"
                },
                "success": {
                    "type": "boolean"
                }
            }
        },
        "models.StaffOrderResponse": {
            "type": "object",
            "properties": {
                "amount": {
                    "type": "string"
                },
                "amount_cents": {
                    "type": "integer"
                },
                "code": {
                    "type": "string"
                },
                "color_mode": {
                    "$ref": "#/definitions/models.ColorMode"
                },
                "copies": {
                    "type": "integer"
                },
                "created_at": {
                    "type": "string"
                },
                "download_url": {
                    "type": "string"
                },
                "file_name": {
                    "type": "string"
                },
                "id": {
                    "type": "string"
                },
                "pages": {
                    "type": "integer"
                },
                "paid_at": {
                    "type": "string"
                },
                "payment_ref": {
                    "type": "string"
                },
                "status": {
                    "$ref": "#/definitions/models.OrderStatus"
                },
                "success": {
                    "type": "boolean"
                }
            }
        },
        "models.YocoWebhookEvent": {
            "type": "object",
            "properties": {
                "id": {
                    "type": "string"
                },
                "payload": {
                    "type": "object",
                    "properties": {
                        "id": {
                            "type": "string"
                        },
                        "metadata": {
                            "type": "object",
                            "additionalProperties": {
                                "type": "string"
                            }
                        },
                        "status": {
                            "type": "string"
                        }
                    }
                },
                "type": {
                    "type": "string"
                }
            }
        }
    },
    "securityDefinitions": {
        "Bearer": {
            "description": "Type \"Bearer\" followed by a space and JWT token.",
            "type": "apiKey",
            "name": "Authorization",
            "in": "header"
        }
    }
}`

// SwaggerInfo holds exported Swagger Info so clients can modify it
var SwaggerInfo = &swag.Spec{
	Version:          "1.0.0",
	Host:             "localhost:8080",
	BasePath:         "/",
	Schemes:          []string{},
	Title:            "Print Kiosk Backend API",
	Description:      "Backend API for the print kiosk. Customers upload a PDF, pay through a Yoco hosted checkout and collect their prints with a pickup code.",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
	LeftDelim:        "{{",
	RightDelim:       "}}",
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}

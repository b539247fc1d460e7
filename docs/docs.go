// Package docs holds the Swagger document served at /swagger/*any.
// It mirrors the handler annotations; docs_test.go checks the two agree.
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
        "/api/v1/trainer/analyses/{mode}": {
            "post": {
                "description": "Text modes take a JSON body {\"text\": \"...\"}; body-analysis takes a multipart \"image\" file (jpg/png).",
                "consumes": [
                    "application/json",
                    "multipart/form-data"
                ],
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "Trainer"
                ],
                "summary": "Run a trainer mode",
                "parameters": [
                    {
                        "type": "string",
                        "description": "Mode (body-analysis, workout-plan, nutrition-plan, fitness-tips)",
                        "name": "mode",
                        "in": "path",
                        "required": true
                    },
                    {
                        "description": "User text for text modes",
                        "name": "body",
                        "in": "body",
                        "schema": {
                            "$ref": "#/definitions/http.analyzeTextReq"
                        }
                    },
                    {
                        "type": "file",
                        "description": "Full-body picture for body-analysis",
                        "name": "image",
                        "in": "formData"
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/http.analyzeResp"
                        }
                    },
                    "400": {
                        "description": "Bad Request",
                        "schema": {
                            "$ref": "#/definitions/response.Resp"
                        }
                    },
                    "404": {
                        "description": "Unknown mode",
                        "schema": {
                            "$ref": "#/definitions/response.Resp"
                        }
                    },
                    "413": {
                        "description": "Image too large",
                        "schema": {
                            "$ref": "#/definitions/response.Resp"
                        }
                    },
                    "415": {
                        "description": "Unsupported image type",
                        "schema": {
                            "$ref": "#/definitions/response.Resp"
                        }
                    },
                    "502": {
                        "description": "Model rejected the request",
                        "schema": {
                            "$ref": "#/definitions/response.Resp"
                        }
                    },
                    "503": {
                        "description": "Model unavailable",
                        "schema": {
                            "$ref": "#/definitions/response.Resp"
                        }
                    }
                }
            }
        },
        "/api/v1/trainer/modes": {
            "get": {
                "description": "Returns the available modes with their labels, hints and expected input kind.",
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "Trainer"
                ],
                "summary": "List trainer modes",
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/http.listModesResp"
                        }
                    }
                }
            }
        },
        "/health": {
            "get": {
                "description": "Check if the API is healthy",
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "Health"
                ],
                "summary": "Health Check",
                "responses": {
                    "200": {
                        "description": "API is healthy",
                        "schema": {
                            "type": "object",
                            "additionalProperties": true
                        }
                    }
                }
            }
        },
        "/live": {
            "get": {
                "description": "Check if the API is alive",
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "Health"
                ],
                "summary": "Liveness Check",
                "responses": {
                    "200": {
                        "description": "API is alive",
                        "schema": {
                            "type": "object",
                            "additionalProperties": true
                        }
                    }
                }
            }
        },
        "/ready": {
            "get": {
                "description": "Check if the API is ready to serve traffic",
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "Health"
                ],
                "summary": "Readiness Check",
                "responses": {
                    "200": {
                        "description": "API is ready",
                        "schema": {
                            "type": "object",
                            "additionalProperties": true
                        }
                    }
                }
            }
        }
    },
    "definitions": {
        "http.analyzeResp": {
            "type": "object",
            "properties": {
                "generated_at": {
                    "type": "string"
                },
                "heading": {
                    "type": "string"
                },
                "markdown": {
                    "type": "string"
                },
                "mode": {
                    "type": "string"
                }
            }
        },
        "http.analyzeTextReq": {
            "type": "object",
            "properties": {
                "text": {
                    "type": "string"
                }
            }
        },
        "http.listModesResp": {
            "type": "object",
            "properties": {
                "modes": {
                    "type": "array",
                    "items": {
                        "$ref": "#/definitions/http.modeResp"
                    }
                }
            }
        },
        "http.modeResp": {
            "type": "object",
            "properties": {
                "action": {
                    "type": "string"
                },
                "heading": {
                    "type": "string"
                },
                "hint": {
                    "type": "string"
                },
                "input": {
                    "type": "string"
                },
                "label": {
                    "type": "string"
                },
                "mode": {
                    "type": "string"
                }
            }
        },
        "response.Resp": {
            "type": "object",
            "properties": {
                "data": {},
                "error_code": {
                    "type": "integer"
                },
                "errors": {},
                "message": {
                    "type": "string"
                }
            }
        }
    }
}`

// SwaggerInfo holds exported Swagger Info so clients can modify it
var SwaggerInfo = &swag.Spec{
	Version:          "1",
	Host:             "localhost:8080",
	BasePath:         "",
	Schemes:          []string{"http"},
	Title:            "Personalized Fitness Trainer API",
	Description:      "Body analysis, workout plans, nutrition plans and fitness tips backed by Gemini.",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}

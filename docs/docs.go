// Package docs serves the OpenAPI description of the dashboard API.
//
// The document is maintained by hand. Keep it in step with the @Router
// annotations in internal/handlers, or replace it with `swag init` output.
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
        "/api/dashboard/stats": {
            "get": {
                "description": "Summarizes the visits of a clinic, or the legacy recording sessions of a user.",
                "produces": ["application/json"],
                "tags": ["dashboard"],
                "summary": "Dashboard statistics",
                "parameters": [
                    {"type": "string", "description": "Clinic id", "name": "hospitalId", "in": "query"},
                    {"type": "string", "description": "User id, used when hospitalId is absent", "name": "userId", "in": "query"}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/models.DashboardStats"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/utils.ResponseData"}},
                    "403": {"description": "Forbidden", "schema": {"$ref": "#/definitions/utils.ResponseData"}},
                    "500": {"description": "Internal Server Error", "schema": {"$ref": "#/definitions/utils.ResponseData"}}
                }
            }
        },
        "/api/records": {
            "get": {
                "produces": ["application/json"],
                "tags": ["records"],
                "summary": "Clinic visit records",
                "parameters": [
                    {"type": "string", "description": "Clinic id", "name": "hospitalId", "in": "query", "required": true},
                    {"type": "integer", "description": "Maximum number of records, 0 for all", "name": "limit", "in": "query"}
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "allOf": [
                                {"$ref": "#/definitions/utils.ResponseData"},
                                {"type": "object", "properties": {"data": {"type": "array", "items": {"$ref": "#/definitions/models.VisitRecordView"}}}}
                            ]
                        }
                    },
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/utils.ResponseData"}},
                    "403": {"description": "Forbidden", "schema": {"$ref": "#/definitions/utils.ResponseData"}},
                    "500": {"description": "Internal Server Error", "schema": {"$ref": "#/definitions/utils.ResponseData"}}
                }
            }
        }
    },
    "definitions": {
        "models.DashboardStats": {
            "type": "object",
            "properties": {
                "totalCount": {"type": "integer"},
                "todayCount": {"type": "integer"},
                "weekCount": {"type": "integer"},
                "monthCount": {"type": "integer"},
                "avgDuration": {"type": "integer"},
                "avgDurationFormatted": {"type": "string"},
                "weeklyData": {"type": "array", "items": {"$ref": "#/definitions/models.WeeklyBucket"}},
                "weekTotal": {"type": "integer"},
                "dailyAverage": {"type": "string"},
                "busiestDay": {"type": "string"},
                "weekChange": {"type": "string"},
                "timeSaved": {"type": "string"},
                "timeSavedPercent": {"type": "string"},
                "topDiagnoses": {"type": "array", "items": {"$ref": "#/definitions/models.DiagnosisCount"}},
                "topDiagnosis": {"type": "string"},
                "accuracy": {"type": "string"},
                "todaySessions": {"type": "array", "items": {"$ref": "#/definitions/models.SessionSummary"}}
            }
        },
        "models.WeeklyBucket": {
            "type": "object",
            "properties": {
                "day": {"type": "string"},
                "date": {"type": "string"},
                "count": {"type": "integer"}
            }
        },
        "models.DiagnosisCount": {
            "type": "object",
            "properties": {
                "diagnosis": {"type": "string"},
                "count": {"type": "integer"}
            }
        },
        "models.SessionSummary": {
            "type": "object",
            "properties": {
                "id": {"type": "string"},
                "time": {"type": "string"},
                "patientId": {"type": "string"},
                "patientName": {"type": "string"},
                "patientGender": {"type": "string"},
                "patientAge": {"type": "string"},
                "diagnosis": {"type": "string"},
                "duration": {"type": "integer"},
                "durationFormatted": {"type": "string"},
                "status": {"type": "string"}
            }
        },
        "models.VisitRecordView": {
            "type": "object",
            "properties": {
                "id": {"type": "string"},
                "hospitalId": {"type": "string"},
                "patientId": {"type": "string"},
                "patientName": {"type": "string"},
                "patientGender": {"type": "string"},
                "patientAge": {"type": "string"},
                "diagnosis": {"type": "string"},
                "duration": {"type": "string"},
                "status": {"type": "string"},
                "date": {"type": "string"},
                "time": {"type": "string"},
                "durationSeconds": {"type": "integer"}
            }
        },
        "utils.ResponseData": {
            "type": "object",
            "properties": {
                "status": {"type": "integer"},
                "message": {"type": "string"},
                "data": {},
                "error": {"type": "string"}
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
	Title:            "Charting Dashboard API",
	Description:      "Visit statistics for the charting dashboard.",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
	LeftDelim:        "{{",
	RightDelim:       "}}",
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}

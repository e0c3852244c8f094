// Package docs holds the OpenAPI document served by the swagger UI.
// Regenerate with: swag init -g cmd/api/main.go
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
        "/employees": {
            "get": {
                "produces": ["application/json"],
                "tags": ["Employees"],
                "summary": "List employees",
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/domain.NamesResponse"}},
                    "500": {"description": "Internal Server Error", "schema": {"$ref": "#/definitions/domain.APIError"}}
                }
            },
            "post": {
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["Employees"],
                "summary": "Add employee",
                "parameters": [
                    {"description": "Employee data", "name": "request", "in": "body", "required": true, "schema": {"$ref": "#/definitions/domain.CreateEmployeeRequest"}}
                ],
                "responses": {
                    "201": {"description": "Created", "schema": {"$ref": "#/definitions/domain.EmployeeDTO"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/domain.APIError"}},
                    "409": {"description": "Conflict", "schema": {"$ref": "#/definitions/domain.APIError"}}
                }
            },
            "delete": {
                "tags": ["Employees"],
                "summary": "Delete employee",
                "parameters": [
                    {"type": "string", "description": "Employee name", "name": "name", "in": "query", "required": true}
                ],
                "responses": {
                    "204": {"description": "No Content"},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/domain.APIError"}}
                }
            }
        },
        "/customers": {
            "get": {
                "produces": ["application/json"],
                "tags": ["Customers"],
                "summary": "List customers",
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/domain.NamesResponse"}}
                }
            },
            "post": {
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["Customers"],
                "summary": "Add customer",
                "parameters": [
                    {"description": "Customer data", "name": "request", "in": "body", "required": true, "schema": {"$ref": "#/definitions/domain.CreateCustomerRequest"}}
                ],
                "responses": {
                    "201": {"description": "Created", "schema": {"$ref": "#/definitions/domain.CustomerDTO"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/domain.APIError"}},
                    "409": {"description": "Conflict", "schema": {"$ref": "#/definitions/domain.APIError"}}
                }
            }
        },
        "/customers/lookup": {
            "get": {
                "produces": ["application/json"],
                "tags": ["Customers"],
                "summary": "Resolve customer id",
                "parameters": [
                    {"type": "string", "description": "Customer name", "name": "name", "in": "query", "required": true}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/domain.CustomerIDResponse"}},
                    "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/domain.APIError"}}
                }
            }
        },
        "/customers/details": {
            "get": {
                "produces": ["application/json"],
                "tags": ["Customers"],
                "summary": "Get customer contact details",
                "parameters": [
                    {"type": "string", "description": "Customer name", "name": "name", "in": "query", "required": true}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/domain.CustomerDetailsDTO"}},
                    "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/domain.APIError"}}
                }
            },
            "put": {
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["Customers"],
                "summary": "Update customer contact details",
                "parameters": [
                    {"description": "Contact details", "name": "request", "in": "body", "required": true, "schema": {"$ref": "#/definitions/domain.UpdateCustomerRequest"}}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/domain.CustomerDetailsDTO"}},
                    "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/domain.APIError"}}
                }
            }
        },
        "/project-categories": {
            "get": {
                "produces": ["application/json"],
                "tags": ["Offer Numbers"],
                "summary": "List project categories",
                "responses": {
                    "200": {"description": "OK", "schema": {"type": "array", "items": {"type": "string"}}}
                }
            }
        },
        "/offer-numbers/next": {
            "get": {
                "produces": ["application/json"],
                "tags": ["Offer Numbers"],
                "summary": "Next initial offer number",
                "parameters": [
                    {"type": "string", "description": "Customer name", "name": "customer", "in": "query", "required": true},
                    {"enum": ["EPC", "ISS", "PSE", "SPP"], "type": "string", "description": "Project category", "name": "category", "in": "query", "required": true}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/domain.NextOfferNumberResponse"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/domain.APIError"}}
                }
            }
        },
        "/offer-numbers/next-revision": {
            "get": {
                "produces": ["application/json"],
                "tags": ["Offer Numbers"],
                "summary": "Next offer revision",
                "parameters": [
                    {"type": "string", "description": "Customer name", "name": "customer", "in": "query", "required": true},
                    {"enum": ["EPC", "ISS", "PSE", "SPP"], "type": "string", "description": "Project category", "name": "category", "in": "query", "required": true},
                    {"type": "integer", "description": "Initial offer number", "name": "initialOfferNumber", "in": "query", "required": true}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/domain.NextRevisionResponse"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/domain.APIError"}}
                }
            }
        },
        "/offer-numbers/serial": {
            "post": {
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["Offer Numbers"],
                "summary": "Preview a serial number",
                "parameters": [
                    {"description": "Serial inputs", "name": "request", "in": "body", "required": true, "schema": {"$ref": "#/definitions/domain.GenerateSerialRequest"}}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/domain.SerialNumberResponse"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/domain.APIError"}}
                }
            }
        },
        "/leads": {
            "get": {
                "produces": ["application/json"],
                "tags": ["Leads"],
                "summary": "List leads",
                "parameters": [
                    {"enum": ["Connected", "Technical Analysis", "Price Offered", "Won", "Completed", "Lost"], "type": "string", "description": "Filter by status", "name": "status", "in": "query"}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/domain.LeadListResponse"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/domain.APIError"}}
                }
            },
            "post": {
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["Leads"],
                "summary": "Create lead",
                "parameters": [
                    {"description": "Lead data", "name": "request", "in": "body", "required": true, "schema": {"$ref": "#/definitions/domain.CreateLeadRequest"}}
                ],
                "responses": {
                    "201": {"description": "Created", "schema": {"$ref": "#/definitions/domain.CreateLeadResponse"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/domain.APIError"}},
                    "404": {"description": "Customer not found", "schema": {"$ref": "#/definitions/domain.APIError"}},
                    "409": {"description": "Serial number already exists", "schema": {"$ref": "#/definitions/domain.APIError"}}
                }
            }
        },
        "/leads/follow-ups": {
            "get": {
                "produces": ["application/json"],
                "tags": ["Leads"],
                "summary": "List leads needing follow-up",
                "parameters": [
                    {"type": "string", "description": "Date (YYYY-MM-DD)", "name": "asOf", "in": "query"}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/domain.FollowUpListResponse"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/domain.APIError"}}
                }
            }
        },
        "/leads/export": {
            "get": {
                "produces": ["application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"],
                "tags": ["Leads"],
                "summary": "Export leads as XLSX",
                "parameters": [
                    {"type": "string", "description": "Filter by status", "name": "status", "in": "query"}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"type": "file"}}
                }
            }
        },
        "/leads/{id}": {
            "get": {
                "produces": ["application/json"],
                "tags": ["Leads"],
                "summary": "Get lead",
                "parameters": [
                    {"type": "integer", "description": "Lead ID", "name": "id", "in": "path", "required": true}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/domain.LeadDTO"}},
                    "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/domain.APIError"}}
                }
            },
            "patch": {
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["Leads"],
                "summary": "Update lead",
                "parameters": [
                    {"type": "integer", "description": "Lead ID", "name": "id", "in": "path", "required": true},
                    {"description": "Fields to update", "name": "request", "in": "body", "required": true, "schema": {"$ref": "#/definitions/domain.UpdateLeadRequest"}}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/domain.LeadDTO"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/domain.APIError"}},
                    "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/domain.APIError"}},
                    "409": {"description": "Conflict", "schema": {"$ref": "#/definitions/domain.APIError"}}
                }
            }
        },
        "/dashboard/summary": {
            "get": {
                "produces": ["application/json"],
                "tags": ["Dashboard"],
                "summary": "Dashboard summary",
                "parameters": [
                    {"type": "string", "description": "Date (YYYY-MM-DD), default today", "name": "asOf", "in": "query"}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/domain.DashboardSummaryDTO"}}
                }
            }
        }
    },
    "definitions": {
        "domain.APIError": {
            "type": "object",
            "properties": {
                "type": {"type": "string"},
                "title": {"type": "string"},
                "status": {"type": "integer"},
                "detail": {"type": "string"},
                "errors": {"type": "object", "additionalProperties": {"type": "string"}}
            }
        },
        "domain.NamesResponse": {
            "type": "object",
            "properties": {
                "data": {"type": "array", "items": {"type": "string"}},
                "total": {"type": "integer"}
            }
        },
        "domain.CreateEmployeeRequest": {
            "type": "object",
            "required": ["name"],
            "properties": {
                "name": {"type": "string", "maxLength": 200},
                "email": {"type": "string"},
                "phone": {"type": "string"}
            }
        },
        "domain.EmployeeDTO": {
            "type": "object",
            "properties": {
                "id": {"type": "integer"},
                "name": {"type": "string"},
                "email": {"type": "string"},
                "phone": {"type": "string"},
                "createdAt": {"type": "string"}
            }
        },
        "domain.CreateCustomerRequest": {
            "type": "object",
            "required": ["name"],
            "properties": {
                "name": {"type": "string", "maxLength": 200},
                "contactPerson": {"type": "string"},
                "email": {"type": "string"},
                "phone": {"type": "string"},
                "address": {"type": "string"}
            }
        },
        "domain.UpdateCustomerRequest": {
            "type": "object",
            "required": ["name"],
            "properties": {
                "name": {"type": "string"},
                "contactPerson": {"type": "string"},
                "email": {"type": "string"},
                "phone": {"type": "string"},
                "address": {"type": "string"}
            }
        },
        "domain.CustomerDTO": {
            "type": "object",
            "properties": {
                "id": {"type": "integer"},
                "name": {"type": "string"},
                "contactPerson": {"type": "string"},
                "email": {"type": "string"},
                "phone": {"type": "string"},
                "address": {"type": "string"},
                "createdAt": {"type": "string"}
            }
        },
        "domain.CustomerDetailsDTO": {
            "type": "object",
            "properties": {
                "contactPerson": {"type": "string"},
                "email": {"type": "string"},
                "phone": {"type": "string"},
                "address": {"type": "string"}
            }
        },
        "domain.CustomerIDResponse": {
            "type": "object",
            "properties": {
                "id": {"type": "integer"}
            }
        },
        "domain.NextOfferNumberResponse": {
            "type": "object",
            "properties": {
                "customer": {"type": "string"},
                "projectCategory": {"type": "string"},
                "initialOfferNumber": {"type": "integer"}
            }
        },
        "domain.NextRevisionResponse": {
            "type": "object",
            "properties": {
                "customer": {"type": "string"},
                "projectCategory": {"type": "string"},
                "initialOfferNumber": {"type": "integer"},
                "offerRevisionNumber": {"type": "string"}
            }
        },
        "domain.GenerateSerialRequest": {
            "type": "object",
            "required": ["projectCategory", "customerName", "offerCreated", "initialOfferNumber", "offerRevisionNumber"],
            "properties": {
                "projectCategory": {"type": "string"},
                "customerName": {"type": "string"},
                "offerCreated": {"type": "string", "example": "2024-03-05"},
                "initialOfferNumber": {"type": "integer"},
                "offerRevisionNumber": {"type": "string", "example": "R1"}
            }
        },
        "domain.SerialNumberResponse": {
            "type": "object",
            "properties": {
                "serialNumber": {"type": "string"}
            }
        },
        "domain.CreateLeadRequest": {
            "type": "object",
            "required": ["customerName", "projectCategory", "assignedSalesPerson", "offerCreated", "leadThrough", "followUpBy"],
            "properties": {
                "customerName": {"type": "string"},
                "projectCategory": {"type": "string", "enum": ["EPC", "ISS", "PSE", "SPP"]},
                "assignedSalesPerson": {"type": "string"},
                "offerCreated": {"type": "string", "example": "2024-03-05"},
                "leadThrough": {"type": "string"},
                "scopeOfWork": {"type": "string"},
                "status": {"type": "string"},
                "initialOfferNumber": {"type": "integer"},
                "offerRevisionNumber": {"type": "string"},
                "offeredValue": {"type": "number"},
                "priority": {"type": "string", "enum": ["P-1", "P-2", "P-3", "P-4"]},
                "followUpBy": {"type": "string"},
                "followUpStatus": {"type": "string"},
                "followUpDate": {"type": "string"},
                "nextFollowUpDate": {"type": "string"},
                "serialNumber": {"type": "string"}
            }
        },
        "domain.UpdateLeadRequest": {
            "type": "object",
            "properties": {
                "status": {"type": "string"},
                "priority": {"type": "string"},
                "offeredValue": {"type": "number"},
                "scopeOfWork": {"type": "string"},
                "assignedSalesPerson": {"type": "string"},
                "leadThrough": {"type": "string"},
                "followUpBy": {"type": "string"},
                "followUpStatus": {"type": "string"},
                "followUpDate": {"type": "string"},
                "nextFollowUpDate": {"type": "string"},
                "serialNumber": {"type": "string"}
            }
        },
        "domain.LeadDTO": {
            "type": "object",
            "properties": {
                "id": {"type": "integer"},
                "customerId": {"type": "integer"},
                "customerName": {"type": "string"},
                "projectCategory": {"type": "string"},
                "assignedSalesPerson": {"type": "string"},
                "offerCreated": {"type": "string"},
                "leadThrough": {"type": "string"},
                "scopeOfWork": {"type": "string"},
                "status": {"type": "string"},
                "initialOfferNumber": {"type": "integer"},
                "offerRevisionNumber": {"type": "string"},
                "offeredValue": {"type": "number"},
                "priority": {"type": "string"},
                "followUpBy": {"type": "string"},
                "followUpStatus": {"type": "string"},
                "followUpDate": {"type": "string"},
                "nextFollowUpDate": {"type": "string"},
                "serialNumber": {"type": "string"},
                "createdAt": {"type": "string"},
                "updatedAt": {"type": "string"}
            }
        },
        "domain.CreateLeadResponse": {
            "type": "object",
            "properties": {
                "message": {"type": "string"},
                "lead": {"$ref": "#/definitions/domain.LeadDTO"}
            }
        },
        "domain.LeadSummaryDTO": {
            "type": "object",
            "properties": {
                "id": {"type": "integer"},
                "customerName": {"type": "string"},
                "projectCategory": {"type": "string"},
                "assignedSalesPerson": {"type": "string"},
                "offerCreated": {"type": "string"},
                "status": {"type": "string"},
                "initialOfferNumber": {"type": "integer"},
                "offerRevisionNumber": {"type": "string"},
                "priority": {"type": "string"},
                "followUpDate": {"type": "string"},
                "nextFollowUpDate": {"type": "string"},
                "serialNumber": {"type": "string"}
            }
        },
        "domain.LeadListResponse": {
            "type": "object",
            "properties": {
                "data": {"type": "array", "items": {"$ref": "#/definitions/domain.LeadSummaryDTO"}},
                "total": {"type": "integer"}
            }
        },
        "domain.FollowUpSummaryDTO": {
            "type": "object",
            "properties": {
                "id": {"type": "integer"},
                "customerName": {"type": "string"},
                "projectCategory": {"type": "string"},
                "assignedSalesPerson": {"type": "string"},
                "offerCreated": {"type": "string"},
                "status": {"type": "string"},
                "followUpDate": {"type": "string"},
                "nextFollowUpDate": {"type": "string"}
            }
        },
        "domain.FollowUpListResponse": {
            "type": "object",
            "properties": {
                "asOf": {"type": "string"},
                "data": {"type": "array", "items": {"$ref": "#/definitions/domain.FollowUpSummaryDTO"}},
                "total": {"type": "integer"}
            }
        },
        "domain.StatusCountDTO": {
            "type": "object",
            "properties": {
                "status": {"type": "string"},
                "count": {"type": "integer"}
            }
        },
        "domain.DashboardSummaryDTO": {
            "type": "object",
            "properties": {
                "totalLeads": {"type": "integer"},
                "totalCustomers": {"type": "integer"},
                "totalEmployees": {"type": "integer"},
                "wonLeads": {"type": "integer"},
                "leadsByStatus": {"type": "array", "items": {"$ref": "#/definitions/domain.StatusCountDTO"}},
                "followUpsDue": {"type": "integer"},
                "upcomingFollowUps": {"type": "array", "items": {"$ref": "#/definitions/domain.FollowUpSummaryDTO"}},
                "asOf": {"type": "string"}
            }
        }
    }
}`

// SwaggerInfo holds exported Swagger Info so clients can modify it
var SwaggerInfo = &swag.Spec{
	Version:          "1.0",
	Host:             "localhost:8080",
	BasePath:         "/api/v1",
	Schemes:          []string{},
	Title:            "XBL Lead Tracker API",
	Description:      "Lead tracking for XBL: master data, offer numbering, serial numbers and follow-ups",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
	LeftDelim:        "{{",
	RightDelim:       "}}",
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}

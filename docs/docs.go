// Package docs registers the swagger spec served under /swagger/.
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
        "/register": {"post": {"tags": ["Auth"], "summary": "Register user"}},
        "/login": {"post": {"tags": ["Auth"], "summary": "Login user"}},
        "/logout": {"post": {"tags": ["Auth"], "summary": "Logout user"}},
        "/warehouses": {
            "get": {"tags": ["Warehouses"], "summary": "List warehouses"},
            "post": {"tags": ["Warehouses"], "summary": "Add warehouse"}
        },
        "/warehouses/stats": {"get": {"tags": ["Warehouses"], "summary": "Warehouse statistics"}},
        "/warehouses/{id}": {
            "get": {"tags": ["Warehouses"], "summary": "Get warehouse"},
            "put": {"tags": ["Warehouses"], "summary": "Update warehouse"},
            "delete": {"tags": ["Warehouses"], "summary": "Delete warehouse"}
        },
        "/storage-requests": {
            "get": {"tags": ["Storage"], "summary": "List storage requests"},
            "post": {"tags": ["Storage"], "summary": "Submit storage request"}
        },
        "/storage-requests/{id}/decision": {"post": {"tags": ["Storage"], "summary": "Decide storage request"}},
        "/inventory": {
            "get": {"tags": ["Inventory"], "summary": "List inventory"},
            "post": {"tags": ["Inventory"], "summary": "Intake goods"}
        },
        "/transfers": {
            "get": {"tags": ["Transfers"], "summary": "List transfer requests"},
            "post": {"tags": ["Transfers"], "summary": "Create transfer request"}
        },
        "/transfers/{id}/approve": {"post": {"tags": ["Transfers"], "summary": "Approve transfer"}},
        "/transfers/{id}/reject": {"post": {"tags": ["Transfers"], "summary": "Reject transfer"}},
        "/transfers/{id}/assign": {"post": {"tags": ["Transfers"], "summary": "Assign driver to transfer"}},
        "/trips": {"get": {"tags": ["Trips"], "summary": "List trips"}},
        "/trips/{tripId}/status": {"post": {"tags": ["Trips"], "summary": "Update trip status"}},
        "/drivers/{driverId}/trips": {"get": {"tags": ["Trips"], "summary": "Trips for a driver"}},
        "/drivers/{driverId}/earnings": {"get": {"tags": ["Trips"], "summary": "Driver earnings"}},
        "/dispatch-requests": {
            "get": {"tags": ["Dispatch"], "summary": "List dispatch requests"},
            "post": {"tags": ["Dispatch"], "summary": "Submit dispatch request"}
        },
        "/dispatch-requests/{id}/approve": {"post": {"tags": ["Dispatch"], "summary": "Approve dispatch request"}},
        "/reports/summary": {"get": {"tags": ["Reports"], "summary": "Report summary"}}
    }
}`

var SwaggerInfo = &swag.Spec{
	Version:          "1.0",
	Host:             "localhost:8080",
	BasePath:         "/",
	Schemes:          []string{},
	Title:            "FWMS CONSOLE API",
	Description:      "Farmer/warehouse logistics console API documentation",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}

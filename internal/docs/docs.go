// Package docs holds the generated Swagger specification.
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
		"/budgets": {
			"post": {
				"tags": [
					"budgets"
				],
				"summary": "Create a budget",
				"produces": [
					"application/json"
				],
				"parameters": [
					{
						"name": "request",
						"in": "body",
						"required": true,
						"schema": {
							"$ref": "#/definitions/handlers.CreateBudgetRequest"
						}
					}
				],
				"consumes": [
					"application/json"
				],
				"responses": {
					"201": {
						"description": "OK",
						"schema": {
							"$ref": "#/definitions/models.Budget"
						}
					},
					"400": {
						"description": "Error",
						"schema": {
							"$ref": "#/definitions/handlers.ErrorResponse"
						}
					},
					"409": {
						"description": "Error",
						"schema": {
							"$ref": "#/definitions/handlers.ErrorResponse"
						}
					},
					"500": {
						"description": "Error",
						"schema": {
							"$ref": "#/definitions/handlers.ErrorResponse"
						}
					}
				}
			}
		},
		"/budgets/{userId}": {
			"get": {
				"tags": [
					"budgets"
				],
				"summary": "List budgets",
				"produces": [
					"application/json"
				],
				"parameters": [
					{
						"type": "string",
						"name": "userId",
						"in": "path",
						"required": true,
						"description": "User ID"
					}
				],
				"responses": {
					"200": {
						"description": "OK",
						"schema": {
							"type": "array",
							"items": {
								"$ref": "#/definitions/models.Budget"
							}
						}
					},
					"500": {
						"description": "Error",
						"schema": {
							"$ref": "#/definitions/handlers.ErrorResponse"
						}
					}
				}
			}
		},
		"/budgets/{budgetId}": {
			"put": {
				"tags": [
					"budgets"
				],
				"summary": "Update a budget",
				"produces": [
					"application/json"
				],
				"parameters": [
					{
						"type": "string",
						"name": "budgetId",
						"in": "path",
						"required": true,
						"description": "Budget ID"
					},
					{
						"name": "request",
						"in": "body",
						"required": true,
						"schema": {
							"$ref": "#/definitions/handlers.UpdateBudgetRequest"
						}
					}
				],
				"consumes": [
					"application/json"
				],
				"responses": {
					"200": {
						"description": "OK",
						"schema": {
							"$ref": "#/definitions/models.Budget"
						}
					},
					"400": {
						"description": "Error",
						"schema": {
							"$ref": "#/definitions/handlers.ErrorResponse"
						}
					},
					"404": {
						"description": "Error",
						"schema": {
							"$ref": "#/definitions/handlers.ErrorResponse"
						}
					},
					"500": {
						"description": "Error",
						"schema": {
							"$ref": "#/definitions/handlers.ErrorResponse"
						}
					}
				}
			},
			"delete": {
				"tags": [
					"budgets"
				],
				"summary": "Delete a budget",
				"produces": [
					"application/json"
				],
				"parameters": [
					{
						"type": "string",
						"name": "budgetId",
						"in": "path",
						"required": true,
						"description": "Budget ID"
					}
				],
				"responses": {
					"200": {
						"description": "OK",
						"schema": {
							"$ref": "#/definitions/handlers.MessageResponse"
						}
					},
					"404": {
						"description": "Error",
						"schema": {
							"$ref": "#/definitions/handlers.ErrorResponse"
						}
					},
					"500": {
						"description": "Error",
						"schema": {
							"$ref": "#/definitions/handlers.ErrorResponse"
						}
					}
				}
			}
		},
		"/budgets/{userId}/summary": {
			"get": {
				"tags": [
					"analytics"
				],
				"summary": "Budget summary",
				"produces": [
					"application/json"
				],
				"parameters": [
					{
						"type": "string",
						"name": "userId",
						"in": "path",
						"required": true,
						"description": "User ID"
					},
					{
						"type": "string",
						"name": "period",
						"in": "query",
						"required": false,
						"description": "week, month or year"
					},
					{
						"type": "string",
						"name": "date",
						"in": "query",
						"required": false,
						"description": "Reference date"
					}
				],
				"responses": {
					"200": {
						"description": "OK",
						"schema": {
							"$ref": "#/definitions/analytics.BudgetSummary"
						}
					},
					"400": {
						"description": "Error",
						"schema": {
							"$ref": "#/definitions/handlers.ErrorResponse"
						}
					},
					"500": {
						"description": "Error",
						"schema": {
							"$ref": "#/definitions/handlers.ErrorResponse"
						}
					}
				}
			}
		},
		"/transactions": {
			"post": {
				"tags": [
					"transactions"
				],
				"summary": "Create a transaction",
				"produces": [
					"application/json"
				],
				"parameters": [
					{
						"name": "request",
						"in": "body",
						"required": true,
						"schema": {
							"$ref": "#/definitions/handlers.CreateTransactionRequest"
						}
					}
				],
				"consumes": [
					"application/json"
				],
				"responses": {
					"201": {
						"description": "OK",
						"schema": {
							"$ref": "#/definitions/models.Transaction"
						}
					},
					"400": {
						"description": "Error",
						"schema": {
							"$ref": "#/definitions/handlers.ErrorResponse"
						}
					},
					"409": {
						"description": "Error",
						"schema": {
							"$ref": "#/definitions/handlers.ErrorResponse"
						}
					},
					"500": {
						"description": "Error",
						"schema": {
							"$ref": "#/definitions/handlers.ErrorResponse"
						}
					}
				}
			}
		},
		"/transactions/{userId}": {
			"get": {
				"tags": [
					"transactions"
				],
				"summary": "List transactions",
				"produces": [
					"application/json"
				],
				"parameters": [
					{
						"type": "string",
						"name": "userId",
						"in": "path",
						"required": true,
						"description": "User ID"
					}
				],
				"responses": {
					"200": {
						"description": "OK",
						"schema": {
							"type": "array",
							"items": {
								"$ref": "#/definitions/models.Transaction"
							}
						}
					},
					"500": {
						"description": "Error",
						"schema": {
							"$ref": "#/definitions/handlers.ErrorResponse"
						}
					}
				}
			}
		},
		"/transactions/{userId}/history": {
			"get": {
				"tags": [
					"transactions"
				],
				"summary": "Paginated transaction history, newest first",
				"produces": [
					"application/json"
				],
				"parameters": [
					{
						"type": "string",
						"name": "userId",
						"in": "path",
						"required": true,
						"description": "User ID"
					},
					{
						"type": "integer",
						"name": "page",
						"in": "query",
						"description": "Page number (default 1)"
					},
					{
						"type": "integer",
						"name": "pageSize",
						"in": "query",
						"description": "Items per page (default 20, max 100)"
					}
				],
				"responses": {
					"200": {
						"description": "OK",
						"schema": {
							"$ref": "#/definitions/pagination.TransactionPage"
						}
					},
					"400": {
						"description": "Invalid input",
						"schema": {
							"$ref": "#/definitions/handlers.ErrorResponse"
						}
					},
					"500": {
						"description": "Error",
						"schema": {
							"$ref": "#/definitions/handlers.ErrorResponse"
						}
					}
				}
			}
		},
		"/transactions/{userId}/trends": {
			"get": {
				"tags": [
					"analytics"
				],
				"summary": "Spending trends",
				"produces": [
					"application/json"
				],
				"parameters": [
					{
						"type": "string",
						"name": "userId",
						"in": "path",
						"required": true,
						"description": "User ID"
					},
					{
						"type": "string",
						"name": "period",
						"in": "query",
						"required": false,
						"description": "week, month or year"
					},
					{
						"type": "string",
						"name": "date",
						"in": "query",
						"required": false,
						"description": "Reference date"
					}
				],
				"responses": {
					"200": {
						"description": "OK",
						"schema": {
							"$ref": "#/definitions/services.Trends"
						}
					},
					"400": {
						"description": "Error",
						"schema": {
							"$ref": "#/definitions/handlers.ErrorResponse"
						}
					},
					"500": {
						"description": "Error",
						"schema": {
							"$ref": "#/definitions/handlers.ErrorResponse"
						}
					}
				}
			}
		},
		"/savings": {
			"post": {
				"tags": [
					"savings"
				],
				"summary": "Create a savings goal",
				"produces": [
					"application/json"
				],
				"parameters": [
					{
						"name": "request",
						"in": "body",
						"required": true,
						"schema": {
							"$ref": "#/definitions/handlers.CreateSavingsGoalRequest"
						}
					}
				],
				"consumes": [
					"application/json"
				],
				"responses": {
					"201": {
						"description": "OK",
						"schema": {
							"$ref": "#/definitions/models.SavingsGoal"
						}
					},
					"400": {
						"description": "Error",
						"schema": {
							"$ref": "#/definitions/handlers.ErrorResponse"
						}
					},
					"500": {
						"description": "Error",
						"schema": {
							"$ref": "#/definitions/handlers.ErrorResponse"
						}
					}
				}
			}
		},
		"/savings/{userId}": {
			"get": {
				"tags": [
					"savings"
				],
				"summary": "List savings goals",
				"produces": [
					"application/json"
				],
				"parameters": [
					{
						"type": "string",
						"name": "userId",
						"in": "path",
						"required": true,
						"description": "User ID"
					}
				],
				"responses": {
					"200": {
						"description": "OK",
						"schema": {
							"type": "array",
							"items": {
								"$ref": "#/definitions/models.SavingsGoal"
							}
						}
					},
					"500": {
						"description": "Error",
						"schema": {
							"$ref": "#/definitions/handlers.ErrorResponse"
						}
					}
				}
			}
		},
		"/savings/{savingGoalId}": {
			"put": {
				"tags": [
					"savings"
				],
				"summary": "Allocate funds to a goal",
				"produces": [
					"application/json"
				],
				"parameters": [
					{
						"type": "string",
						"name": "savingGoalId",
						"in": "path",
						"required": true,
						"description": "Saving goal ID"
					},
					{
						"name": "request",
						"in": "body",
						"required": true,
						"schema": {
							"$ref": "#/definitions/handlers.AllocateFundsRequest"
						}
					}
				],
				"consumes": [
					"application/json"
				],
				"responses": {
					"200": {
						"description": "OK",
						"schema": {
							"$ref": "#/definitions/models.SavingsGoal"
						}
					},
					"400": {
						"description": "Error",
						"schema": {
							"$ref": "#/definitions/handlers.ErrorResponse"
						}
					},
					"404": {
						"description": "Error",
						"schema": {
							"$ref": "#/definitions/handlers.ErrorResponse"
						}
					},
					"500": {
						"description": "Error",
						"schema": {
							"$ref": "#/definitions/handlers.ErrorResponse"
						}
					}
				}
			},
			"delete": {
				"tags": [
					"savings"
				],
				"summary": "Delete a savings goal",
				"produces": [
					"application/json"
				],
				"parameters": [
					{
						"type": "string",
						"name": "savingGoalId",
						"in": "path",
						"required": true,
						"description": "Saving goal ID"
					}
				],
				"responses": {
					"200": {
						"description": "OK",
						"schema": {
							"$ref": "#/definitions/handlers.MessageResponse"
						}
					},
					"404": {
						"description": "Error",
						"schema": {
							"$ref": "#/definitions/handlers.ErrorResponse"
						}
					},
					"500": {
						"description": "Error",
						"schema": {
							"$ref": "#/definitions/handlers.ErrorResponse"
						}
					}
				}
			}
		},
		"/users": {
			"post": {
				"tags": [
					"users"
				],
				"summary": "Create a user",
				"produces": [
					"application/json"
				],
				"parameters": [
					{
						"name": "request",
						"in": "body",
						"required": true,
						"schema": {
							"$ref": "#/definitions/handlers.CreateUserRequest"
						}
					}
				],
				"consumes": [
					"application/json"
				],
				"responses": {
					"201": {
						"description": "OK",
						"schema": {
							"$ref": "#/definitions/models.User"
						}
					},
					"400": {
						"description": "Error",
						"schema": {
							"$ref": "#/definitions/handlers.ErrorResponse"
						}
					},
					"409": {
						"description": "Error",
						"schema": {
							"$ref": "#/definitions/handlers.ErrorResponse"
						}
					},
					"500": {
						"description": "Error",
						"schema": {
							"$ref": "#/definitions/handlers.ErrorResponse"
						}
					}
				}
			},
			"get": {
				"tags": [
					"users"
				],
				"summary": "List users",
				"produces": [
					"application/json"
				],
				"parameters": [],
				"responses": {
					"200": {
						"description": "OK",
						"schema": {
							"type": "array",
							"items": {
								"$ref": "#/definitions/models.User"
							}
						}
					},
					"500": {
						"description": "Error",
						"schema": {
							"$ref": "#/definitions/handlers.ErrorResponse"
						}
					}
				}
			}
		},
		"/dashboard/{userId}": {
			"get": {
				"tags": [
					"analytics"
				],
				"summary": "Dashboard",
				"produces": [
					"application/json"
				],
				"parameters": [
					{
						"type": "string",
						"name": "userId",
						"in": "path",
						"required": true,
						"description": "User ID"
					},
					{
						"type": "string",
						"name": "period",
						"in": "query",
						"required": false,
						"description": "week, month or year"
					},
					{
						"type": "string",
						"name": "date",
						"in": "query",
						"required": false,
						"description": "Reference date"
					}
				],
				"responses": {
					"200": {
						"description": "OK",
						"schema": {
							"$ref": "#/definitions/analytics.Dashboard"
						}
					},
					"400": {
						"description": "Error",
						"schema": {
							"$ref": "#/definitions/handlers.ErrorResponse"
						}
					},
					"500": {
						"description": "Error",
						"schema": {
							"$ref": "#/definitions/handlers.ErrorResponse"
						}
					}
				}
			}
		}
	},
	"definitions": {
		"handlers.ErrorDetail": {
			"type": "object",
			"properties": {
				"code": {
					"type": "string"
				},
				"message": {
					"type": "string"
				}
			}
		},
		"handlers.ErrorResponse": {
			"type": "object",
			"properties": {
				"error": {
					"$ref": "#/definitions/handlers.ErrorDetail"
				}
			}
		},
		"handlers.MessageResponse": {
			"type": "object",
			"properties": {
				"message": {
					"type": "string"
				}
			}
		},
		"handlers.CreateBudgetRequest": {
			"type": "object",
			"properties": {
				"userId": {
					"type": "string"
				},
				"budgetId": {
					"type": "string"
				},
				"category": {
					"type": "string"
				},
				"customCategory": {
					"type": "string"
				},
				"amount": {
					"type": "number"
				},
				"notes": {
					"type": "string"
				},
				"date": {
					"type": "string"
				}
			}
		},
		"handlers.UpdateBudgetRequest": {
			"type": "object",
			"properties": {
				"amount": {
					"type": "number"
				},
				"notes": {
					"type": "string"
				},
				"date": {
					"type": "string"
				}
			}
		},
		"handlers.CreateTransactionRequest": {
			"type": "object",
			"properties": {
				"userId": {
					"type": "string"
				},
				"transactionId": {
					"type": "string"
				},
				"type": {
					"type": "string"
				},
				"description": {
					"type": "string"
				},
				"amount": {
					"type": "number"
				},
				"category": {
					"type": "string"
				},
				"date": {
					"type": "string"
				},
				"account": {
					"type": "string"
				}
			}
		},
		"handlers.CreateSavingsGoalRequest": {
			"type": "object",
			"properties": {
				"userId": {
					"type": "string"
				},
				"savingGoalId": {
					"type": "string"
				},
				"goalName": {
					"type": "string"
				},
				"targetAmount": {
					"type": "number"
				},
				"initialAmount": {
					"type": "number"
				},
				"allocationAmount": {
					"type": "number"
				},
				"date": {
					"type": "string"
				}
			}
		},
		"handlers.AllocateFundsRequest": {
			"type": "object",
			"properties": {
				"allocationAmount": {
					"type": "number"
				},
				"goalName": {
					"type": "string"
				},
				"targetAmount": {
					"type": "number"
				},
				"date": {
					"type": "string"
				}
			}
		},
		"handlers.CreateUserRequest": {
			"type": "object",
			"properties": {
				"userId": {
					"type": "string"
				},
				"name": {
					"type": "string"
				},
				"email": {
					"type": "string"
				},
				"phoneNumber": {
					"type": "string"
				}
			}
		},
		"models.Budget": {
			"type": "object",
			"properties": {
				"id": {
					"type": "string"
				},
				"userId": {
					"type": "string"
				},
				"budgetId": {
					"type": "string"
				},
				"category": {
					"type": "string"
				},
				"customCategory": {
					"type": "string"
				},
				"categoryKey": {
					"type": "string"
				},
				"amount": {
					"type": "number"
				},
				"notes": {
					"type": "string"
				},
				"date": {
					"type": "string"
				}
			}
		},
		"pagination.TransactionPage": {
			"type": "object",
			"properties": {
				"data": {
					"type": "array",
					"items": {
						"$ref": "#/definitions/models.Transaction"
					}
				},
				"page": {
					"type": "integer"
				},
				"pageSize": {
					"type": "integer"
				},
				"totalItems": {
					"type": "integer"
				},
				"totalPages": {
					"type": "integer"
				}
			}
		},
		"models.Transaction": {
			"type": "object",
			"properties": {
				"id": {
					"type": "string"
				},
				"userId": {
					"type": "string"
				},
				"transactionId": {
					"type": "string"
				},
				"type": {
					"type": "string"
				},
				"description": {
					"type": "string"
				},
				"amount": {
					"type": "number"
				},
				"category": {
					"type": "string"
				},
				"categoryKey": {
					"type": "string"
				},
				"date": {
					"type": "string"
				},
				"account": {
					"type": "string"
				}
			}
		},
		"models.SavingsGoal": {
			"type": "object",
			"properties": {
				"id": {
					"type": "string"
				},
				"userId": {
					"type": "string"
				},
				"savingGoalId": {
					"type": "string"
				},
				"goalName": {
					"type": "string"
				},
				"targetAmount": {
					"type": "number"
				},
				"initialAmount": {
					"type": "number"
				},
				"date": {
					"type": "string"
				}
			}
		},
		"models.User": {
			"type": "object",
			"properties": {
				"id": {
					"type": "string"
				},
				"userId": {
					"type": "string"
				},
				"name": {
					"type": "string"
				},
				"email": {
					"type": "string"
				},
				"phoneNumber": {
					"type": "string"
				}
			}
		},
		"analytics.BudgetSummary": {
			"type": "object",
			"properties": {
				"period": {
					"type": "string"
				},
				"totalBudgeted": {
					"type": "number"
				},
				"totalSpent": {
					"type": "number"
				},
				"totalRemaining": {
					"type": "number"
				},
				"spentPercentage": {
					"type": "integer"
				},
				"remainingPercentage": {
					"type": "integer"
				},
				"categories": {
					"type": "array",
					"items": {
						"type": "object"
					}
				},
				"alerts": {
					"type": "array",
					"items": {
						"type": "object"
					}
				},
				"status": {
					"type": "string"
				}
			}
		},
		"analytics.Dashboard": {
			"type": "object",
			"properties": {
				"period": {
					"type": "string"
				},
				"referenceDate": {
					"type": "string"
				},
				"budget": {
					"type": "object"
				},
				"cashFlow": {
					"type": "object"
				},
				"breakdown": {
					"type": "array",
					"items": {
						"type": "object"
					}
				},
				"spending": {
					"type": "array",
					"items": {
						"type": "object"
					}
				},
				"cashFlowTrend": {
					"type": "array",
					"items": {
						"type": "object"
					}
				},
				"savings": {
					"type": "object"
				}
			}
		},
		"services.Trends": {
			"type": "object",
			"properties": {
				"period": {
					"type": "string"
				},
				"window": {
					"type": "object"
				},
				"spending": {
					"type": "array",
					"items": {
						"type": "object"
					}
				},
				"cashFlow": {
					"type": "array",
					"items": {
						"type": "object"
					}
				}
			}
		}
	}
}`

// SwaggerInfo holds exported Swagger Info so clients can modify it
var SwaggerInfo = &swag.Spec{
	Version:		  "1.0",
	Host:			 "localhost:5000",
	BasePath:		 "/api",
	Schemes:		  []string{},
	Title:			"WalletWise API",
	Description:	  "WalletWise tracks income, expenses, budgets and savings goals and reports period-scoped spending metrics.",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
	LeftDelim:		"{{",
	RightDelim:	   "}}",
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}

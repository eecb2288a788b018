// Package docs holds the OpenAPI description served at /swagger.
// Regenerate with `swag init -g cmd/api/main.go` after changing handler annotations.
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
        "/client/match/exit": {
            "post": {
                "security": [
                    {
                        "session": []
                    }
                ],
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "group"
                ],
                "summary": "Acknowledge a stateless call",
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/response.Envelope"
                        }
                    }
                }
            }
        },
        "/client/match/group/current": {
            "post": {
                "security": [
                    {
                        "session": []
                    }
                ],
                "description": "Empty when the caller is solo",
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "group"
                ],
                "summary": "Current squad",
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "allOf": [
                                {
                                    "$ref": "#/definitions/response.Envelope"
                                },
                                {
                                    "type": "object",
                                    "properties": {
                                        "data": {
                                            "$ref": "#/definitions/group.CurrentResponse"
                                        }
                                    }
                                }
                            ]
                        }
                    }
                }
            }
        },
        "/client/match/group/delete": {
            "post": {
                "security": [
                    {
                        "session": []
                    }
                ],
                "description": "Owner only; members are told they left and pending invites are cancelled",
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "group"
                ],
                "summary": "Disband the group",
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "allOf": [
                                {
                                    "$ref": "#/definitions/response.Envelope"
                                },
                                {
                                    "type": "object",
                                    "properties": {
                                        "data": {
                                            "type": "boolean"
                                        }
                                    }
                                }
                            ]
                        }
                    }
                }
            }
        },
        "/client/match/group/exit_from_menu": {
            "post": {
                "security": [
                    {
                        "session": []
                    }
                ],
                "description": "Succeeds when the caller is in no group",
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "group"
                ],
                "summary": "Leave the group from the main menu",
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/response.Envelope"
                        }
                    }
                }
            }
        },
        "/client/match/group/invite/accept": {
            "post": {
                "security": [
                    {
                        "session": []
                    }
                ],
                "consumes": [
                    "application/json"
                ],
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "group"
                ],
                "summary": "Accept an invite",
                "parameters": [
                    {
                        "description": "Invite id",
                        "name": "request",
                        "in": "body",
                        "required": true,
                        "schema": {
                            "$ref": "#/definitions/group.RequestIDRequest"
                        }
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "allOf": [
                                {
                                    "$ref": "#/definitions/response.Envelope"
                                },
                                {
                                    "type": "object",
                                    "properties": {
                                        "data": {
                                            "type": "array",
                                            "items": {
                                                "$ref": "#/definitions/group.MemberState"
                                            }
                                        }
                                    }
                                }
                            ]
                        }
                    }
                }
            }
        },
        "/client/match/group/invite/cancel": {
            "post": {
                "security": [
                    {
                        "session": []
                    }
                ],
                "consumes": [
                    "application/json"
                ],
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "group"
                ],
                "summary": "Cancel an invite",
                "parameters": [
                    {
                        "description": "Invite id",
                        "name": "request",
                        "in": "body",
                        "required": true,
                        "schema": {
                            "$ref": "#/definitions/group.RequestIDRequest"
                        }
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "allOf": [
                                {
                                    "$ref": "#/definitions/response.Envelope"
                                },
                                {
                                    "type": "object",
                                    "properties": {
                                        "data": {
                                            "type": "boolean"
                                        }
                                    }
                                }
                            ]
                        }
                    }
                }
            }
        },
        "/client/match/group/invite/cancel-all": {
            "post": {
                "security": [
                    {
                        "session": []
                    }
                ],
                "description": "Owner only; the owner stays in the group",
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "group"
                ],
                "summary": "Cancel every invite",
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "allOf": [
                                {
                                    "$ref": "#/definitions/response.Envelope"
                                },
                                {
                                    "type": "object",
                                    "properties": {
                                        "data": {
                                            "type": "boolean"
                                        }
                                    }
                                }
                            ]
                        }
                    }
                }
            }
        },
        "/client/match/group/invite/decline": {
            "post": {
                "security": [
                    {
                        "session": []
                    }
                ],
                "consumes": [
                    "application/json"
                ],
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "group"
                ],
                "summary": "Decline an invite",
                "parameters": [
                    {
                        "description": "Invite id",
                        "name": "request",
                        "in": "body",
                        "required": true,
                        "schema": {
                            "$ref": "#/definitions/group.RequestIDRequest"
                        }
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "allOf": [
                                {
                                    "$ref": "#/definitions/response.Envelope"
                                },
                                {
                                    "type": "object",
                                    "properties": {
                                        "data": {
                                            "type": "boolean"
                                        }
                                    }
                                }
                            ]
                        }
                    }
                }
            }
        },
        "/client/match/group/invite/send": {
            "post": {
                "security": [
                    {
                        "session": []
                    }
                ],
                "description": "Invite an account into the caller's group, creating the group if needed",
                "consumes": [
                    "application/json"
                ],
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "group"
                ],
                "summary": "Invite a player",
                "parameters": [
                    {
                        "description": "Invite recipient",
                        "name": "request",
                        "in": "body",
                        "required": true,
                        "schema": {
                            "$ref": "#/definitions/group.InviteSendRequest"
                        }
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "allOf": [
                                {
                                    "$ref": "#/definitions/response.Envelope"
                                },
                                {
                                    "type": "object",
                                    "properties": {
                                        "data": {
                                            "type": "string"
                                        }
                                    }
                                }
                            ]
                        }
                    },
                    "400": {
                        "description": "Bad Request",
                        "schema": {
                            "$ref": "#/definitions/response.Envelope"
                        }
                    }
                }
            }
        },
        "/client/match/group/leave": {
            "post": {
                "security": [
                    {
                        "session": []
                    }
                ],
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "group"
                ],
                "summary": "Leave the group",
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "allOf": [
                                {
                                    "$ref": "#/definitions/response.Envelope"
                                },
                                {
                                    "type": "object",
                                    "properties": {
                                        "data": {
                                            "type": "boolean"
                                        }
                                    }
                                }
                            ]
                        }
                    }
                }
            }
        },
        "/client/match/group/looking/start": {
            "post": {
                "security": [
                    {
                        "session": []
                    }
                ],
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "group"
                ],
                "summary": "Acknowledge a stateless call",
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/response.Envelope"
                        }
                    }
                }
            }
        },
        "/client/match/group/looking/stop": {
            "post": {
                "security": [
                    {
                        "session": []
                    }
                ],
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "group"
                ],
                "summary": "Acknowledge a stateless call",
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/response.Envelope"
                        }
                    }
                }
            }
        },
        "/client/match/group/player/remove": {
            "post": {
                "security": [
                    {
                        "session": []
                    }
                ],
                "consumes": [
                    "application/json"
                ],
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "group"
                ],
                "summary": "Kick a member",
                "parameters": [
                    {
                        "description": "Account to remove",
                        "name": "request",
                        "in": "body",
                        "required": true,
                        "schema": {
                            "$ref": "#/definitions/group.PlayerRemoveRequest"
                        }
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "allOf": [
                                {
                                    "$ref": "#/definitions/response.Envelope"
                                },
                                {
                                    "type": "object",
                                    "properties": {
                                        "data": {
                                            "type": "boolean"
                                        }
                                    }
                                }
                            ]
                        }
                    }
                }
            }
        },
        "/client/match/group/status": {
            "post": {
                "security": [
                    {
                        "session": []
                    }
                ],
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "group"
                ],
                "summary": "Group status",
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "allOf": [
                                {
                                    "$ref": "#/definitions/response.Envelope"
                                },
                                {
                                    "type": "object",
                                    "properties": {
                                        "data": {
                                            "$ref": "#/definitions/group.StatusResponse"
                                        }
                                    }
                                }
                            ]
                        }
                    }
                }
            }
        },
        "/client/match/group/transfer": {
            "post": {
                "security": [
                    {
                        "session": []
                    }
                ],
                "consumes": [
                    "application/json"
                ],
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "group"
                ],
                "summary": "Transfer leadership",
                "parameters": [
                    {
                        "description": "New owner",
                        "name": "request",
                        "in": "body",
                        "required": true,
                        "schema": {
                            "$ref": "#/definitions/group.TransferRequest"
                        }
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "allOf": [
                                {
                                    "$ref": "#/definitions/response.Envelope"
                                },
                                {
                                    "type": "object",
                                    "properties": {
                                        "data": {
                                            "type": "boolean"
                                        }
                                    }
                                }
                            ]
                        }
                    }
                }
            }
        },
        "/client/match/raid/not-ready": {
            "post": {
                "security": [
                    {
                        "session": []
                    }
                ],
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "group"
                ],
                "summary": "Mark not ready",
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "allOf": [
                                {
                                    "$ref": "#/definitions/response.Envelope"
                                },
                                {
                                    "type": "object",
                                    "properties": {
                                        "data": {
                                            "type": "boolean"
                                        }
                                    }
                                }
                            ]
                        }
                    }
                }
            }
        },
        "/client/match/raid/ready": {
            "post": {
                "security": [
                    {
                        "session": []
                    }
                ],
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "group"
                ],
                "summary": "Mark ready",
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "allOf": [
                                {
                                    "$ref": "#/definitions/response.Envelope"
                                },
                                {
                                    "type": "object",
                                    "properties": {
                                        "data": {
                                            "type": "boolean"
                                        }
                                    }
                                }
                            ]
                        }
                    }
                }
            }
        },
        "/client/profile/status": {
            "post": {
                "security": [
                    {
                        "session": []
                    }
                ],
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "profiles"
                ],
                "summary": "Caller profile status",
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "allOf": [
                                {
                                    "$ref": "#/definitions/response.Envelope"
                                },
                                {
                                    "type": "object",
                                    "properties": {
                                        "data": {
                                            "$ref": "#/definitions/profile.StatusResponse"
                                        }
                                    }
                                }
                            ]
                        }
                    }
                }
            }
        },
        "/client/profile/{aid}": {
            "get": {
                "security": [
                    {
                        "session": []
                    }
                ],
                "description": "Public summary of the profile owning an account id",
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "profiles"
                ],
                "summary": "Get profile summary",
                "parameters": [
                    {
                        "type": "integer",
                        "description": "Account ID",
                        "name": "aid",
                        "in": "path",
                        "required": true
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "allOf": [
                                {
                                    "$ref": "#/definitions/response.Envelope"
                                },
                                {
                                    "type": "object",
                                    "properties": {
                                        "data": {
                                            "$ref": "#/definitions/profile.SummaryResponse"
                                        }
                                    }
                                }
                            ]
                        }
                    },
                    "404": {
                        "description": "Not Found",
                        "schema": {
                            "$ref": "#/definitions/response.Envelope"
                        }
                    }
                }
            }
        },
        "/debug/groups": {
            "get": {
                "description": "Mounted only when DEBUG_ROUTES is enabled",
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "debug"
                ],
                "summary": "Active groups",
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "allOf": [
                                {
                                    "$ref": "#/definitions/response.Envelope"
                                },
                                {
                                    "type": "object",
                                    "properties": {
                                        "data": {
                                            "type": "array",
                                            "items": {
                                                "$ref": "#/definitions/group.Snapshot"
                                            }
                                        }
                                    }
                                }
                            ]
                        }
                    }
                }
            }
        },
        "/notifierServer/getwebsocket/{sessionID}": {
            "get": {
                "tags": [
                    "notifier"
                ],
                "summary": "Open the push channel",
                "parameters": [
                    {
                        "type": "string",
                        "description": "Session id",
                        "name": "sessionID",
                        "in": "path",
                        "required": true
                    }
                ],
                "responses": {
                    "101": {
                        "description": "Switching protocols"
                    },
                    "401": {
                        "description": "Unauthorized",
                        "schema": {
                            "$ref": "#/definitions/response.Envelope"
                        }
                    }
                }
            }
        }
    },
    "definitions": {
        "group.CharacterInfo": {
            "type": "object",
            "properties": {
                "GameVersion": {
                    "type": "string"
                },
                "Level": {
                    "type": "integer"
                },
                "MemberCategory": {
                    "type": "integer"
                },
                "Nickname": {
                    "type": "string"
                },
                "SavageLockTime": {
                    "type": "number"
                },
                "SavageNickname": {
                    "type": "string"
                },
                "Side": {
                    "type": "string"
                },
                "hasCoopExtension": {
                    "type": "boolean"
                }
            }
        },
        "group.CurrentResponse": {
            "type": "object",
            "properties": {
                "squad": {
                    "type": "array",
                    "items": {
                        "$ref": "#/definitions/group.MemberState"
                    }
                }
            }
        },
        "group.InviteSendRequest": {
            "type": "object",
            "required": [
                "to"
            ],
            "properties": {
                "inLobby": {
                    "type": "boolean"
                },
                "to": {
                    "type": "string"
                }
            }
        },
        "group.MemberState": {
            "type": "object",
            "properties": {
                "Info": {
                    "$ref": "#/definitions/group.CharacterInfo"
                },
                "_id": {
                    "type": "string"
                },
                "aid": {
                    "type": "integer"
                },
                "isLeader": {
                    "type": "boolean"
                },
                "isReady": {
                    "type": "boolean"
                }
            }
        },
        "group.PlayerRemoveRequest": {
            "type": "object",
            "required": [
                "aidToKick"
            ],
            "properties": {
                "aidToKick": {
                    "type": "string"
                }
            }
        },
        "group.RequestIDRequest": {
            "type": "object",
            "required": [
                "requestId"
            ],
            "properties": {
                "requestId": {
                    "type": "string"
                }
            }
        },
        "group.Snapshot": {
            "type": "object",
            "properties": {
                "id": {
                    "type": "integer"
                },
                "members": {
                    "type": "array",
                    "items": {
                        "$ref": "#/definitions/group.MemberState"
                    }
                },
                "owner": {
                    "type": "integer"
                },
                "pendingInvites": {
                    "type": "integer"
                }
            }
        },
        "group.StatusResponse": {
            "type": "object",
            "properties": {
                "maxPveCountExceeded": {
                    "type": "boolean"
                },
                "players": {
                    "type": "array",
                    "items": {
                        "$ref": "#/definitions/group.MemberState"
                    }
                }
            }
        },
        "group.TransferRequest": {
            "type": "object",
            "required": [
                "aidToChange"
            ],
            "properties": {
                "aidToChange": {
                    "type": "string"
                }
            }
        },
        "profile.StatusEntry": {
            "type": "object",
            "properties": {
                "ip": {
                    "type": "string"
                },
                "port": {
                    "type": "integer"
                },
                "profileToken": {
                    "type": "string"
                },
                "profileid": {
                    "type": "string"
                },
                "sid": {
                    "type": "string"
                },
                "status": {
                    "type": "string"
                }
            }
        },
        "profile.StatusResponse": {
            "type": "object",
            "properties": {
                "maxPveCountExceeded": {
                    "type": "boolean"
                },
                "profiles": {
                    "type": "array",
                    "items": {
                        "$ref": "#/definitions/profile.StatusEntry"
                    }
                }
            }
        },
        "profile.SummaryResponse": {
            "type": "object",
            "properties": {
                "Level": {
                    "type": "integer"
                },
                "Nickname": {
                    "type": "string"
                },
                "Side": {
                    "type": "string"
                },
                "aid": {
                    "type": "integer"
                }
            }
        },
        "response.Envelope": {
            "type": "object",
            "properties": {
                "data": {},
                "err": {
                    "type": "integer"
                },
                "errmsg": {
                    "type": "string"
                }
            }
        }
    },
    "securityDefinitions": {
        "session": {
            "type": "apiKey",
            "name": "X-Session-ID",
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
	Title:            "Party Match API",
	Description:      "Group invites, membership and raid readiness for matchmaking.",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
	LeftDelim:        "{{",
	RightDelim:       "}}",
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}

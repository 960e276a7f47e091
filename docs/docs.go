// Package docs Swagger 文档，可用 swag init 重新生成
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
        "/api/v1/auth/login": {
            "post": {
                "description": "登录获取 JWT token，导入与修改交付记录需要携带",
                "consumes": [
                    "application/json"
                ],
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "认证"
                ],
                "summary": "用户登录",
                "parameters": [
                    {
                        "description": "登录信息",
                        "name": "request",
                        "in": "body",
                        "required": true,
                        "schema": {
                            "$ref": "#/definitions/api.LoginRequest"
                        }
                    }
                ],
                "responses": {
                    "200": {
                        "description": "登录成功",
                        "schema": {
                            "allOf": [
                                {
                                    "$ref": "#/definitions/api.Response"
                                },
                                {
                                    "type": "object",
                                    "properties": {
                                        "data": {
                                            "$ref": "#/definitions/api.LoginResponse"
                                        }
                                    }
                                }
                            ]
                        }
                    },
                    "400": {
                        "description": "请求参数错误",
                        "schema": {
                            "$ref": "#/definitions/api.Response"
                        }
                    },
                    "401": {
                        "description": "用户名或密码错误",
                        "schema": {
                            "$ref": "#/definitions/api.Response"
                        }
                    },
                    "429": {
                        "description": "登录过于频繁",
                        "schema": {
                            "$ref": "#/definitions/api.Response"
                        }
                    }
                }
            }
        },
        "/api/v1/auth/password": {
            "put": {
                "security": [
                    {
                        "BearerAuth": []
                    }
                ],
                "description": "修改当前用户密码",
                "consumes": [
                    "application/json"
                ],
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "认证"
                ],
                "summary": "修改密码",
                "parameters": [
                    {
                        "description": "密码信息",
                        "name": "request",
                        "in": "body",
                        "required": true,
                        "schema": {
                            "$ref": "#/definitions/api.ChangePasswordRequest"
                        }
                    }
                ],
                "responses": {
                    "200": {
                        "description": "修改成功",
                        "schema": {
                            "$ref": "#/definitions/api.Response"
                        }
                    },
                    "400": {
                        "description": "请求参数错误",
                        "schema": {
                            "$ref": "#/definitions/api.Response"
                        }
                    },
                    "401": {
                        "description": "原密码错误",
                        "schema": {
                            "$ref": "#/definitions/api.Response"
                        }
                    }
                }
            }
        },
        "/api/v1/auth/profile": {
            "get": {
                "security": [
                    {
                        "BearerAuth": []
                    }
                ],
                "description": "返回用户信息以及其导入批次数、维护的交付记录数和最近一次导入",
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "认证"
                ],
                "summary": "获取当前用户信息",
                "responses": {
                    "200": {
                        "description": "获取成功",
                        "schema": {
                            "allOf": [
                                {
                                    "$ref": "#/definitions/api.Response"
                                },
                                {
                                    "type": "object",
                                    "properties": {
                                        "data": {
                                            "$ref": "#/definitions/api.ProfileResponse"
                                        }
                                    }
                                }
                            ]
                        }
                    },
                    "401": {
                        "description": "未授权",
                        "schema": {
                            "$ref": "#/definitions/api.Response"
                        }
                    },
                    "404": {
                        "description": "用户不存在",
                        "schema": {
                            "$ref": "#/definitions/api.Response"
                        }
                    }
                }
            }
        },
        "/api/v1/datasets": {
            "get": {
                "description": "列出 Tesla 交付数据集与汽车价格预测数据集（后者无列说明）",
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "数据集"
                ],
                "summary": "数据集目录",
                "responses": {
                    "200": {
                        "description": "获取成功",
                        "schema": {
                            "allOf": [
                                {
                                    "$ref": "#/definitions/api.Response"
                                },
                                {
                                    "type": "object",
                                    "properties": {
                                        "data": {
                                            "type": "array",
                                            "items": {
                                                "$ref": "#/definitions/models.DatasetInfo"
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
        "/api/v1/datasets/schema": {
            "get": {
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "数据集"
                ],
                "summary": "交付数据集结构",
                "responses": {
                    "200": {
                        "description": "获取成功",
                        "schema": {
                            "allOf": [
                                {
                                    "$ref": "#/definitions/api.Response"
                                },
                                {
                                    "type": "object",
                                    "properties": {
                                        "data": {
                                            "$ref": "#/definitions/api.SchemaResponse"
                                        }
                                    }
                                }
                            ]
                        }
                    }
                }
            }
        },
        "/api/v1/deliveries": {
            "get": {
                "description": "分页查询交付记录，可按年、月、地区、车型筛选，按 Year, Month, Region, Model 排序",
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "交付记录"
                ],
                "summary": "交付记录列表",
                "parameters": [
                    {
                        "type": "integer",
                        "description": "页码",
                        "name": "page",
                        "in": "query",
                        "default": 1
                    },
                    {
                        "type": "integer",
                        "description": "每页数量（最大 100）",
                        "name": "page_size",
                        "in": "query",
                        "default": 10
                    },
                    {
                        "type": "integer",
                        "description": "年份",
                        "name": "year",
                        "in": "query"
                    },
                    {
                        "type": "integer",
                        "description": "月份",
                        "name": "month",
                        "in": "query"
                    },
                    {
                        "type": "string",
                        "description": "地区",
                        "name": "region",
                        "in": "query"
                    },
                    {
                        "type": "string",
                        "description": "车型",
                        "name": "model",
                        "in": "query"
                    }
                ],
                "responses": {
                    "200": {
                        "description": "获取成功",
                        "schema": {
                            "allOf": [
                                {
                                    "$ref": "#/definitions/api.Response"
                                },
                                {
                                    "type": "object",
                                    "properties": {
                                        "data": {
                                            "allOf": [
                                                {
                                                    "$ref": "#/definitions/api.PageResponse"
                                                },
                                                {
                                                    "type": "object",
                                                    "properties": {
                                                        "list": {
                                                            "type": "array",
                                                            "items": {
                                                                "$ref": "#/definitions/models.DeliveryRecord"
                                                            }
                                                        }
                                                    }
                                                }
                                            ]
                                        }
                                    }
                                }
                            ]
                        }
                    },
                    "400": {
                        "description": "请求参数错误",
                        "schema": {
                            "$ref": "#/definitions/api.Response"
                        }
                    }
                }
            },
            "post": {
                "security": [
                    {
                        "BearerAuth": []
                    }
                ],
                "description": "校验取值范围后创建，(Year, Month, Region, Model) 已存在时返回 409",
                "consumes": [
                    "application/json"
                ],
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "交付记录"
                ],
                "summary": "创建交付记录",
                "parameters": [
                    {
                        "description": "交付记录",
                        "name": "request",
                        "in": "body",
                        "required": true,
                        "schema": {
                            "$ref": "#/definitions/api.DeliveryRequest"
                        }
                    }
                ],
                "responses": {
                    "200": {
                        "description": "创建成功",
                        "schema": {
                            "allOf": [
                                {
                                    "$ref": "#/definitions/api.Response"
                                },
                                {
                                    "type": "object",
                                    "properties": {
                                        "data": {
                                            "$ref": "#/definitions/models.DeliveryRecord"
                                        }
                                    }
                                }
                            ]
                        }
                    },
                    "400": {
                        "description": "校验失败",
                        "schema": {
                            "allOf": [
                                {
                                    "$ref": "#/definitions/api.Response"
                                },
                                {
                                    "type": "object",
                                    "properties": {
                                        "data": {
                                            "type": "array",
                                            "items": {
                                                "$ref": "#/definitions/models.FieldError"
                                            }
                                        }
                                    }
                                }
                            ]
                        }
                    },
                    "401": {
                        "description": "未授权",
                        "schema": {
                            "$ref": "#/definitions/api.Response"
                        }
                    },
                    "409": {
                        "description": "记录已存在",
                        "schema": {
                            "$ref": "#/definitions/api.Response"
                        }
                    }
                }
            }
        },
        "/api/v1/deliveries/regions": {
            "get": {
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "交付记录"
                ],
                "summary": "已有数据的地区",
                "responses": {
                    "200": {
                        "description": "获取成功",
                        "schema": {
                            "allOf": [
                                {
                                    "$ref": "#/definitions/api.Response"
                                },
                                {
                                    "type": "object",
                                    "properties": {
                                        "data": {
                                            "type": "array",
                                            "items": {
                                                "type": "string"
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
        "/api/v1/deliveries/{id}": {
            "get": {
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "交付记录"
                ],
                "summary": "获取单条交付记录",
                "parameters": [
                    {
                        "type": "integer",
                        "description": "记录ID",
                        "name": "id",
                        "in": "path",
                        "required": true
                    }
                ],
                "responses": {
                    "200": {
                        "description": "获取成功",
                        "schema": {
                            "allOf": [
                                {
                                    "$ref": "#/definitions/api.Response"
                                },
                                {
                                    "type": "object",
                                    "properties": {
                                        "data": {
                                            "$ref": "#/definitions/models.DeliveryRecord"
                                        }
                                    }
                                }
                            ]
                        }
                    },
                    "404": {
                        "description": "记录不存在",
                        "schema": {
                            "$ref": "#/definitions/api.Response"
                        }
                    }
                }
            },
            "put": {
                "security": [
                    {
                        "BearerAuth": []
                    }
                ],
                "consumes": [
                    "application/json"
                ],
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "交付记录"
                ],
                "summary": "更新交付记录",
                "parameters": [
                    {
                        "type": "integer",
                        "description": "记录ID",
                        "name": "id",
                        "in": "path",
                        "required": true
                    },
                    {
                        "description": "交付记录",
                        "name": "request",
                        "in": "body",
                        "required": true,
                        "schema": {
                            "$ref": "#/definitions/api.DeliveryRequest"
                        }
                    }
                ],
                "responses": {
                    "200": {
                        "description": "更新成功",
                        "schema": {
                            "allOf": [
                                {
                                    "$ref": "#/definitions/api.Response"
                                },
                                {
                                    "type": "object",
                                    "properties": {
                                        "data": {
                                            "$ref": "#/definitions/models.DeliveryRecord"
                                        }
                                    }
                                }
                            ]
                        }
                    },
                    "400": {
                        "description": "校验失败",
                        "schema": {
                            "$ref": "#/definitions/api.Response"
                        }
                    },
                    "404": {
                        "description": "记录不存在",
                        "schema": {
                            "$ref": "#/definitions/api.Response"
                        }
                    },
                    "409": {
                        "description": "与其他记录冲突",
                        "schema": {
                            "$ref": "#/definitions/api.Response"
                        }
                    }
                }
            },
            "delete": {
                "security": [
                    {
                        "BearerAuth": []
                    }
                ],
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "交付记录"
                ],
                "summary": "删除交付记录",
                "parameters": [
                    {
                        "type": "integer",
                        "description": "记录ID",
                        "name": "id",
                        "in": "path",
                        "required": true
                    }
                ],
                "responses": {
                    "200": {
                        "description": "删除成功",
                        "schema": {
                            "$ref": "#/definitions/api.Response"
                        }
                    },
                    "404": {
                        "description": "记录不存在",
                        "schema": {
                            "$ref": "#/definitions/api.Response"
                        }
                    }
                }
            }
        },
        "/api/v1/export/csv": {
            "get": {
                "description": "按数据集列顺序导出 CSV，可按地区筛选",
                "produces": [
                    "text/csv"
                ],
                "tags": [
                    "导出"
                ],
                "summary": "导出交付记录",
                "parameters": [
                    {
                        "type": "string",
                        "description": "地区",
                        "name": "region",
                        "in": "query"
                    }
                ],
                "responses": {
                    "200": {
                        "description": "CSV 文件",
                        "schema": {
                            "type": "file"
                        }
                    },
                    "400": {
                        "description": "请求参数错误",
                        "schema": {
                            "$ref": "#/definitions/api.Response"
                        }
                    }
                }
            }
        },
        "/api/v1/export/excel": {
            "get": {
                "produces": [
                    "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"
                ],
                "tags": [
                    "导出"
                ],
                "summary": "导出交付记录为 Excel",
                "parameters": [
                    {
                        "type": "string",
                        "description": "地区",
                        "name": "region",
                        "in": "query"
                    }
                ],
                "responses": {
                    "200": {
                        "description": "Excel 文件",
                        "schema": {
                            "type": "file"
                        }
                    },
                    "400": {
                        "description": "请求参数错误",
                        "schema": {
                            "$ref": "#/definitions/api.Response"
                        }
                    }
                }
            }
        },
        "/api/v1/export/json": {
            "get": {
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "导出"
                ],
                "summary": "导出交付记录为 JSON",
                "parameters": [
                    {
                        "type": "string",
                        "description": "地区",
                        "name": "region",
                        "in": "query"
                    }
                ],
                "responses": {
                    "200": {
                        "description": "导出成功",
                        "schema": {
                            "$ref": "#/definitions/api.Response"
                        }
                    },
                    "400": {
                        "description": "请求参数错误",
                        "schema": {
                            "$ref": "#/definitions/api.Response"
                        }
                    }
                }
            }
        },
        "/api/v1/imports": {
            "get": {
                "security": [
                    {
                        "BearerAuth": []
                    }
                ],
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "导入"
                ],
                "summary": "导入批次列表",
                "parameters": [
                    {
                        "type": "integer",
                        "description": "页码",
                        "name": "page",
                        "in": "query",
                        "default": 1
                    },
                    {
                        "type": "integer",
                        "description": "每页数量",
                        "name": "page_size",
                        "in": "query",
                        "default": 10
                    }
                ],
                "responses": {
                    "200": {
                        "description": "获取成功",
                        "schema": {
                            "allOf": [
                                {
                                    "$ref": "#/definitions/api.Response"
                                },
                                {
                                    "type": "object",
                                    "properties": {
                                        "data": {
                                            "allOf": [
                                                {
                                                    "$ref": "#/definitions/api.PageResponse"
                                                },
                                                {
                                                    "type": "object",
                                                    "properties": {
                                                        "list": {
                                                            "type": "array",
                                                            "items": {
                                                                "$ref": "#/definitions/models.ImportBatch"
                                                            }
                                                        }
                                                    }
                                                }
                                            ]
                                        }
                                    }
                                }
                            ]
                        }
                    }
                }
            },
            "post": {
                "security": [
                    {
                        "BearerAuth": []
                    }
                ],
                "description": "校验每一行并写入数据库，合法行写入数据库，已存在的 (Year, Month, Region, Model) 会被覆盖，错误行列入报告",
                "consumes": [
                    "multipart/form-data"
                ],
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "导入"
                ],
                "summary": "导入交付数据 CSV",
                "parameters": [
                    {
                        "type": "file",
                        "description": "CSV 文件",
                        "name": "file",
                        "in": "formData",
                        "required": true
                    }
                ],
                "responses": {
                    "200": {
                        "description": "导入完成",
                        "schema": {
                            "allOf": [
                                {
                                    "$ref": "#/definitions/api.Response"
                                },
                                {
                                    "type": "object",
                                    "properties": {
                                        "data": {
                                            "$ref": "#/definitions/service.ImportReport"
                                        }
                                    }
                                }
                            ]
                        }
                    },
                    "400": {
                        "description": "文件格式有误",
                        "schema": {
                            "$ref": "#/definitions/api.Response"
                        }
                    },
                    "401": {
                        "description": "未授权",
                        "schema": {
                            "$ref": "#/definitions/api.Response"
                        }
                    },
                    "429": {
                        "description": "请求过于频繁",
                        "schema": {
                            "$ref": "#/definitions/api.Response"
                        }
                    }
                }
            }
        },
        "/api/v1/imports/{id}": {
            "get": {
                "security": [
                    {
                        "BearerAuth": []
                    }
                ],
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "导入"
                ],
                "summary": "导入批次详情",
                "parameters": [
                    {
                        "type": "string",
                        "description": "批次ID",
                        "name": "id",
                        "in": "path",
                        "required": true
                    }
                ],
                "responses": {
                    "200": {
                        "description": "获取成功",
                        "schema": {
                            "allOf": [
                                {
                                    "$ref": "#/definitions/api.Response"
                                },
                                {
                                    "type": "object",
                                    "properties": {
                                        "data": {
                                            "$ref": "#/definitions/models.ImportBatch"
                                        }
                                    }
                                }
                            ]
                        }
                    },
                    "404": {
                        "description": "批次不存在",
                        "schema": {
                            "$ref": "#/definitions/api.Response"
                        }
                    }
                }
            }
        },
        "/api/v1/statistics/battery": {
            "get": {
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "统计"
                ],
                "summary": "电池容量与续航",
                "parameters": [
                    {
                        "type": "string",
                        "description": "地区",
                        "name": "region",
                        "in": "query"
                    }
                ],
                "responses": {
                    "200": {
                        "description": "获取成功",
                        "schema": {
                            "allOf": [
                                {
                                    "$ref": "#/definitions/api.Response"
                                },
                                {
                                    "type": "object",
                                    "properties": {
                                        "data": {
                                            "$ref": "#/definitions/analysis.BatteryRangeResult"
                                        }
                                    }
                                }
                            ]
                        }
                    }
                }
            }
        },
        "/api/v1/statistics/correlation": {
            "get": {
                "description": "含 Year、Month 在内的数值列两两皮尔逊相关系数，Charging_Stations 无数据时不输出",
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "统计"
                ],
                "summary": "数值列相关矩阵",
                "parameters": [
                    {
                        "type": "string",
                        "description": "地区",
                        "name": "region",
                        "in": "query"
                    }
                ],
                "responses": {
                    "200": {
                        "description": "获取成功",
                        "schema": {
                            "allOf": [
                                {
                                    "$ref": "#/definitions/api.Response"
                                },
                                {
                                    "type": "object",
                                    "properties": {
                                        "data": {
                                            "$ref": "#/definitions/analysis.CorrMatrix"
                                        }
                                    }
                                }
                            ]
                        }
                    },
                    "400": {
                        "description": "未知地区",
                        "schema": {
                            "$ref": "#/definitions/api.Response"
                        }
                    }
                }
            }
        },
        "/api/v1/statistics/counts": {
            "get": {
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "统计"
                ],
                "summary": "分类列计数",
                "parameters": [
                    {
                        "type": "string",
                        "description": "region | model | year | month",
                        "name": "column",
                        "in": "query",
                        "default": "region"
                    },
                    {
                        "type": "string",
                        "description": "地区",
                        "name": "region",
                        "in": "query"
                    }
                ],
                "responses": {
                    "200": {
                        "description": "获取成功",
                        "schema": {
                            "allOf": [
                                {
                                    "$ref": "#/definitions/api.Response"
                                },
                                {
                                    "type": "object",
                                    "properties": {
                                        "data": {
                                            "type": "array",
                                            "items": {
                                                "$ref": "#/definitions/analysis.ValueCount"
                                            }
                                        }
                                    }
                                }
                            ]
                        }
                    },
                    "400": {
                        "description": "参数错误",
                        "schema": {
                            "$ref": "#/definitions/api.Response"
                        }
                    }
                }
            }
        },
        "/api/v1/statistics/describe": {
            "get": {
                "description": "count/mean/std/min/25%/50%/75%/max",
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "统计"
                ],
                "summary": "数值列描述统计",
                "parameters": [
                    {
                        "type": "string",
                        "description": "地区",
                        "name": "region",
                        "in": "query"
                    }
                ],
                "responses": {
                    "200": {
                        "description": "获取成功",
                        "schema": {
                            "allOf": [
                                {
                                    "$ref": "#/definitions/api.Response"
                                },
                                {
                                    "type": "object",
                                    "properties": {
                                        "data": {
                                            "type": "array",
                                            "items": {
                                                "$ref": "#/definitions/analysis.ColumnStats"
                                            }
                                        }
                                    }
                                }
                            ]
                        }
                    },
                    "400": {
                        "description": "未知地区",
                        "schema": {
                            "$ref": "#/definitions/api.Response"
                        }
                    }
                }
            }
        },
        "/api/v1/statistics/infra": {
            "get": {
                "description": "仅统计带有 Charging_Stations 的月份，无数据时 available 为 false",
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "统计"
                ],
                "summary": "充电站数量与销量",
                "parameters": [
                    {
                        "type": "string",
                        "description": "地区",
                        "name": "region",
                        "in": "query"
                    }
                ],
                "responses": {
                    "200": {
                        "description": "获取成功",
                        "schema": {
                            "allOf": [
                                {
                                    "$ref": "#/definitions/api.Response"
                                },
                                {
                                    "type": "object",
                                    "properties": {
                                        "data": {
                                            "$ref": "#/definitions/analysis.InfraResult"
                                        }
                                    }
                                }
                            ]
                        }
                    }
                }
            }
        },
        "/api/v1/statistics/monthly": {
            "get": {
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "统计"
                ],
                "summary": "月度交付量",
                "parameters": [
                    {
                        "type": "string",
                        "description": "地区",
                        "name": "region",
                        "in": "query"
                    }
                ],
                "responses": {
                    "200": {
                        "description": "获取成功",
                        "schema": {
                            "allOf": [
                                {
                                    "$ref": "#/definitions/api.Response"
                                },
                                {
                                    "type": "object",
                                    "properties": {
                                        "data": {
                                            "$ref": "#/definitions/analysis.MonthlySeries"
                                        }
                                    }
                                }
                            ]
                        }
                    }
                }
            }
        },
        "/api/v1/statistics/price": {
            "get": {
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "统计"
                ],
                "summary": "月度平均售价",
                "parameters": [
                    {
                        "type": "string",
                        "description": "地区",
                        "name": "region",
                        "in": "query"
                    }
                ],
                "responses": {
                    "200": {
                        "description": "获取成功",
                        "schema": {
                            "allOf": [
                                {
                                    "$ref": "#/definitions/api.Response"
                                },
                                {
                                    "type": "object",
                                    "properties": {
                                        "data": {
                                            "$ref": "#/definitions/analysis.MonthlySeries"
                                        }
                                    }
                                }
                            ]
                        }
                    }
                }
            }
        },
        "/api/v1/statistics/production": {
            "get": {
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "统计"
                ],
                "summary": "产量与交付量对比",
                "parameters": [
                    {
                        "type": "string",
                        "description": "地区",
                        "name": "region",
                        "in": "query"
                    }
                ],
                "responses": {
                    "200": {
                        "description": "获取成功",
                        "schema": {
                            "allOf": [
                                {
                                    "$ref": "#/definitions/api.Response"
                                },
                                {
                                    "type": "object",
                                    "properties": {
                                        "data": {
                                            "$ref": "#/definitions/analysis.ProductionComparison"
                                        }
                                    }
                                }
                            ]
                        }
                    }
                }
            }
        },
        "/api/v1/statistics/share": {
            "get": {
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "统计"
                ],
                "summary": "车型月度份额",
                "parameters": [
                    {
                        "type": "string",
                        "description": "地区",
                        "name": "region",
                        "in": "query"
                    }
                ],
                "responses": {
                    "200": {
                        "description": "获取成功",
                        "schema": {
                            "allOf": [
                                {
                                    "$ref": "#/definitions/api.Response"
                                },
                                {
                                    "type": "object",
                                    "properties": {
                                        "data": {
                                            "$ref": "#/definitions/analysis.ModelShareResult"
                                        }
                                    }
                                }
                            ]
                        }
                    }
                }
            }
        },
        "/api/v1/validate": {
            "post": {
                "consumes": [
                    "multipart/form-data"
                ],
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "导入"
                ],
                "summary": "校验交付数据 CSV",
                "parameters": [
                    {
                        "type": "file",
                        "description": "CSV 文件",
                        "name": "file",
                        "in": "formData",
                        "required": true
                    }
                ],
                "responses": {
                    "200": {
                        "description": "校验结果",
                        "schema": {
                            "allOf": [
                                {
                                    "$ref": "#/definitions/api.Response"
                                },
                                {
                                    "type": "object",
                                    "properties": {
                                        "data": {
                                            "$ref": "#/definitions/service.ImportReport"
                                        }
                                    }
                                }
                            ]
                        }
                    },
                    "400": {
                        "description": "文件有误",
                        "schema": {
                            "$ref": "#/definitions/api.Response"
                        }
                    },
                    "429": {
                        "description": "校验过于频繁",
                        "schema": {
                            "$ref": "#/definitions/api.Response"
                        }
                    }
                }
            }
        }
    },
    "definitions": {
        "analysis.BatteryRangePoint": {
            "type": "object",
            "properties": {
                "battery_capacity_kwh": {
                    "type": "number"
                },
                "period": {
                    "type": "string",
                    "example": "2023-06"
                },
                "range_km": {
                    "type": "number"
                }
            }
        },
        "analysis.BatteryRangeResult": {
            "type": "object",
            "properties": {
                "correlation": {
                    "type": "number"
                },
                "mean_battery_capacity_kwh": {
                    "type": "number"
                },
                "mean_range_km": {
                    "type": "number"
                },
                "points": {
                    "type": "array",
                    "items": {
                        "$ref": "#/definitions/analysis.BatteryRangePoint"
                    }
                }
            }
        },
        "analysis.ColumnStats": {
            "type": "object",
            "properties": {
                "column": {
                    "type": "string",
                    "example": "Estimated_Deliveries"
                },
                "count": {
                    "type": "integer"
                },
                "max": {
                    "type": "number"
                },
                "mean": {
                    "type": "number"
                },
                "median": {
                    "type": "number"
                },
                "min": {
                    "type": "number"
                },
                "missing": {
                    "type": "integer"
                },
                "missing_ratio": {
                    "type": "number",
                    "description": "缺失值占全部记录的比例"
                },
                "p25": {
                    "type": "number"
                },
                "p75": {
                    "type": "number"
                },
                "std": {
                    "type": "number"
                }
            }
        },
        "analysis.CorrMatrix": {
            "type": "object",
            "properties": {
                "columns": {
                    "type": "array",
                    "items": {
                        "type": "string"
                    }
                },
                "values": {
                    "type": "array",
                    "items": {
                        "type": "array",
                        "items": {
                            "type": "number"
                        }
                    }
                }
            }
        },
        "analysis.InfraPoint": {
            "type": "object",
            "properties": {
                "charging_stations": {
                    "type": "integer"
                },
                "deliveries": {
                    "type": "integer"
                },
                "period": {
                    "type": "string",
                    "example": "2023-06"
                }
            }
        },
        "analysis.InfraResult": {
            "type": "object",
            "properties": {
                "available": {
                    "type": "boolean"
                },
                "correlation": {
                    "type": "number"
                },
                "points": {
                    "type": "array",
                    "items": {
                        "$ref": "#/definitions/analysis.InfraPoint"
                    }
                }
            }
        },
        "analysis.ModelShareResult": {
            "type": "object",
            "properties": {
                "latest_period": {
                    "type": "string",
                    "example": "2024-12"
                },
                "latest_share": {
                    "type": "object",
                    "additionalProperties": {
                        "type": "number"
                    }
                },
                "mean_share": {
                    "type": "object",
                    "additionalProperties": {
                        "type": "number"
                    }
                },
                "points": {
                    "type": "array",
                    "items": {
                        "$ref": "#/definitions/analysis.SharePoint"
                    }
                }
            }
        },
        "analysis.MonthlyPoint": {
            "type": "object",
            "properties": {
                "period": {
                    "type": "string",
                    "example": "2023-06"
                },
                "value": {
                    "type": "number"
                }
            }
        },
        "analysis.MonthlySeries": {
            "type": "object",
            "properties": {
                "points": {
                    "type": "array",
                    "items": {
                        "$ref": "#/definitions/analysis.MonthlyPoint"
                    }
                },
                "summary": {
                    "$ref": "#/definitions/analysis.SeriesSummary"
                }
            }
        },
        "analysis.ProductionComparison": {
            "type": "object",
            "properties": {
                "correlation": {
                    "type": "number"
                },
                "mean_deliveries": {
                    "type": "number"
                },
                "mean_production": {
                    "type": "number"
                },
                "mean_ratio": {
                    "type": "number"
                },
                "points": {
                    "type": "array",
                    "items": {
                        "$ref": "#/definitions/analysis.ProductionPoint"
                    }
                }
            }
        },
        "analysis.ProductionPoint": {
            "type": "object",
            "properties": {
                "deliveries": {
                    "type": "integer"
                },
                "period": {
                    "type": "string",
                    "example": "2023-06"
                },
                "production": {
                    "type": "integer"
                }
            }
        },
        "analysis.SeriesSummary": {
            "type": "object",
            "properties": {
                "end": {
                    "type": "string",
                    "example": "2024-12"
                },
                "max": {
                    "type": "number"
                },
                "mean": {
                    "type": "number"
                },
                "min": {
                    "type": "number"
                },
                "start": {
                    "type": "string",
                    "example": "2015-01"
                },
                "total": {
                    "type": "number"
                }
            }
        },
        "analysis.SharePoint": {
            "type": "object",
            "properties": {
                "period": {
                    "type": "string",
                    "example": "2023-06"
                },
                "shares": {
                    "type": "object",
                    "additionalProperties": {
                        "type": "number"
                    }
                }
            }
        },
        "analysis.ValueCount": {
            "type": "object",
            "properties": {
                "count": {
                    "type": "integer"
                },
                "value": {
                    "type": "string",
                    "example": "Europe"
                }
            }
        },
        "api.ChangePasswordRequest": {
            "type": "object",
            "required": [
                "new_password",
                "old_password"
            ],
            "properties": {
                "new_password": {
                    "type": "string",
                    "example": "newpassword123",
                    "maxLength": 50,
                    "minLength": 6
                },
                "old_password": {
                    "type": "string",
                    "example": "oldpassword123"
                }
            }
        },
        "api.DeliveryRequest": {
            "type": "object",
            "properties": {
                "avg_price_usd": {
                    "type": "number",
                    "example": 52000
                },
                "battery_capacity_kwh": {
                    "type": "number",
                    "example": 75
                },
                "charging_stations": {
                    "type": "integer"
                },
                "co2_saved_tons": {
                    "type": "number",
                    "example": 12000
                },
                "estimated_deliveries": {
                    "type": "integer",
                    "example": 55000
                },
                "model": {
                    "type": "string",
                    "example": "Model Y"
                },
                "month": {
                    "type": "integer",
                    "example": 6
                },
                "production_units": {
                    "type": "integer",
                    "example": 58000
                },
                "range_km": {
                    "type": "number",
                    "example": 530
                },
                "region": {
                    "type": "string",
                    "example": "North America"
                },
                "year": {
                    "type": "integer",
                    "example": 2023
                }
            }
        },
        "api.LoginRequest": {
            "type": "object",
            "required": [
                "password",
                "username"
            ],
            "properties": {
                "password": {
                    "type": "string",
                    "example": "admin123456"
                },
                "username": {
                    "type": "string",
                    "example": "admin",
                    "description": "可为用户名或邮箱"
                }
            }
        },
        "api.LoginResponse": {
            "type": "object",
            "properties": {
                "token": {
                    "type": "string"
                },
                "user_info": {
                    "$ref": "#/definitions/models.User"
                }
            }
        },
        "api.PageResponse": {
            "type": "object",
            "properties": {
                "list": {},
                "page": {
                    "type": "integer"
                },
                "page_size": {
                    "type": "integer"
                },
                "total": {
                    "type": "integer"
                }
            }
        },
        "api.ProfileResponse": {
            "type": "object",
            "properties": {
                "import_batches": {
                    "type": "integer",
                    "description": "该用户发起的导入批次数"
                },
                "last_import_at": {
                    "type": "string"
                },
                "last_import_file": {
                    "type": "string"
                },
                "maintained_records": {
                    "type": "integer",
                    "description": "最后一次由该用户写入的交付记录数"
                },
                "user": {
                    "$ref": "#/definitions/models.User"
                }
            }
        },
        "api.Response": {
            "type": "object",
            "properties": {
                "code": {
                    "type": "integer"
                },
                "data": {},
                "message": {
                    "type": "string"
                }
            }
        },
        "api.SchemaResponse": {
            "type": "object",
            "properties": {
                "columns": {
                    "type": "array",
                    "items": {
                        "$ref": "#/definitions/models.Column"
                    }
                },
                "max_month": {
                    "type": "integer"
                },
                "max_year": {
                    "type": "integer"
                },
                "min_month": {
                    "type": "integer"
                },
                "min_year": {
                    "type": "integer"
                },
                "models": {
                    "type": "array",
                    "items": {
                        "type": "string"
                    }
                },
                "regions": {
                    "type": "array",
                    "items": {
                        "$ref": "#/definitions/models.Region"
                    }
                }
            }
        },
        "models.Column": {
            "type": "object",
            "properties": {
                "description": {
                    "type": "string"
                },
                "name": {
                    "type": "string",
                    "example": "Estimated_Deliveries"
                },
                "required": {
                    "type": "boolean"
                },
                "type": {
                    "type": "string",
                    "example": "integer"
                },
                "values": {
                    "type": "array",
                    "items": {
                        "type": "string"
                    }
                }
            }
        },
        "models.DatasetInfo": {
            "type": "object",
            "properties": {
                "columns": {
                    "type": "array",
                    "items": {
                        "$ref": "#/definitions/models.Column"
                    }
                },
                "description": {
                    "type": "string"
                },
                "documented": {
                    "type": "boolean"
                },
                "key": {
                    "type": "string",
                    "example": "tesla-deliveries"
                },
                "source_url": {
                    "type": "string"
                },
                "title": {
                    "type": "string"
                }
            }
        },
        "models.DeliveryRecord": {
            "type": "object",
            "properties": {
                "avg_price_usd": {
                    "type": "number"
                },
                "battery_capacity_kwh": {
                    "type": "number"
                },
                "charging_stations": {
                    "type": "integer"
                },
                "co2_saved_tons": {
                    "type": "number"
                },
                "created_at": {
                    "type": "string"
                },
                "estimated_deliveries": {
                    "type": "integer"
                },
                "id": {
                    "type": "integer"
                },
                "import_batch_id": {
                    "type": "string"
                },
                "model": {
                    "$ref": "#/definitions/models.VehicleModel"
                },
                "month": {
                    "type": "integer"
                },
                "production_units": {
                    "type": "integer"
                },
                "range_km": {
                    "type": "number"
                },
                "region": {
                    "$ref": "#/definitions/models.Region"
                },
                "updated_at": {
                    "type": "string"
                },
                "updated_by": {
                    "type": "integer"
                },
                "year": {
                    "type": "integer"
                }
            }
        },
        "models.FieldError": {
            "type": "object",
            "properties": {
                "field": {
                    "type": "string",
                    "example": "Month"
                },
                "message": {
                    "type": "string"
                }
            }
        },
        "models.ImportBatch": {
            "type": "object",
            "properties": {
                "created_at": {
                    "type": "string"
                },
                "created_by": {
                    "type": "integer"
                },
                "duplicate_rows": {
                    "type": "integer"
                },
                "error_summary": {
                    "type": "string"
                },
                "file_name": {
                    "type": "string"
                },
                "id": {
                    "type": "string"
                },
                "imported_rows": {
                    "type": "integer"
                },
                "region_rows": {
                    "type": "object",
                    "additionalProperties": {}
                },
                "rejected_rows": {
                    "type": "integer"
                },
                "total_rows": {
                    "type": "integer"
                }
            }
        },
        "models.Region": {
            "type": "string",
            "enum": [
                "Asia",
                "Europe",
                "Middle East",
                "North America"
            ],
            "x-enum-varnames": [
                "RegionAsia",
                "RegionEurope",
                "RegionMiddleEast",
                "RegionNorthAmerica"
            ]
        },
        "models.User": {
            "type": "object",
            "properties": {
                "created_at": {
                    "type": "string"
                },
                "email": {
                    "type": "string"
                },
                "id": {
                    "type": "integer"
                },
                "is_admin": {
                    "type": "boolean"
                },
                "status": {
                    "type": "string"
                },
                "updated_at": {
                    "type": "string"
                },
                "username": {
                    "type": "string"
                }
            }
        },
        "models.VehicleModel": {
            "type": "string",
            "enum": [
                "Model 3",
                "Model S",
                "Model X",
                "Model Y",
                "Cybertruck"
            ],
            "x-enum-varnames": [
                "Model3",
                "ModelS",
                "ModelX",
                "ModelY",
                "ModelCybertruck"
            ]
        },
        "service.ImportReport": {
            "type": "object",
            "properties": {
                "batch_id": {
                    "type": "string"
                },
                "duplicate_rows": {
                    "type": "integer"
                },
                "errors": {
                    "type": "array",
                    "items": {
                        "$ref": "#/definitions/service.RowErrorView"
                    }
                },
                "file_name": {
                    "type": "string"
                },
                "imported_rows": {
                    "type": "integer"
                },
                "rejected_rows": {
                    "type": "integer"
                },
                "total_rows": {
                    "type": "integer"
                },
                "truncated": {
                    "type": "boolean"
                }
            }
        },
        "service.RowErrorView": {
            "type": "object",
            "properties": {
                "column": {
                    "type": "string"
                },
                "line": {
                    "type": "integer"
                },
                "message": {
                    "type": "string"
                }
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
	Host:             "localhost:8080",
	BasePath:         "/",
	Schemes:          []string{},
	Title:            "Tesla 交付数据 API",
	Description:      "Tesla 全球交付数据集的导入、校验、查询、统计与导出",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
	LeftDelim:        "{{",
	RightDelim:       "}}",
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}

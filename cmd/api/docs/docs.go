// Package docs registers the Swagger document served at /swagger. Keep it in
// step with the @Router annotations in cmd/api/handlers.
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
            "get": {
                "description": "The API always serves content; status is degraded while the CMS is down",
                "produces": ["application/json"],
                "tags": ["health"],
                "summary": "Health check",
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/dto.HealthResponseDTO"}}
                }
            }
        },
        "/status": {
            "get": {
                "produces": ["application/json"],
                "tags": ["health"],
                "summary": "Content source status",
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/dto.StatusResponseDTO"}}
                }
            }
        },
        "/api/v1/articles": {
            "get": {
                "description": "List articles filtered by text query and topic, sorted by date",
                "produces": ["application/json"],
                "tags": ["articles"],
                "summary": "List articles",
                "parameters": [
                    {"type": "string", "description": "Text query over title, description and author name", "name": "q", "in": "query"},
                    {"type": "string", "description": "Exact topic name; all or empty means every topic", "name": "topic", "in": "query"},
                    {"type": "string", "description": "newest (default), oldest or popular", "name": "sort", "in": "query"}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/dto.ArticleListDTO"}}
                }
            }
        },
        "/api/v1/articles/{slug}": {
            "get": {
                "produces": ["application/json"],
                "tags": ["articles"],
                "summary": "Get article by slug",
                "parameters": [
                    {"type": "string", "description": "Article slug", "name": "slug", "in": "path", "required": true}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/models.Article"}},
                    "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/dto.ErrorResponseDTO"}}
                }
            }
        },
        "/api/v1/episodes": {
            "get": {
                "description": "List episodes filtered by text query and topic, sorted by date or plays",
                "produces": ["application/json"],
                "tags": ["episodes"],
                "summary": "List episodes",
                "parameters": [
                    {"type": "string", "description": "Text query over title, description and guest name", "name": "q", "in": "query"},
                    {"type": "string", "description": "Exact topic name; all or empty means every topic", "name": "topic", "in": "query"},
                    {"type": "string", "description": "newest (default), oldest or popular", "name": "sort", "in": "query"}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/dto.EpisodeListDTO"}}
                }
            }
        },
        "/api/v1/episodes/featured": {
            "get": {
                "produces": ["application/json"],
                "tags": ["episodes"],
                "summary": "Featured episode",
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/models.Episode"}},
                    "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/dto.ErrorResponseDTO"}}
                }
            }
        },
        "/api/v1/episodes/{slug}": {
            "get": {
                "produces": ["application/json"],
                "tags": ["episodes"],
                "summary": "Get episode by slug",
                "parameters": [
                    {"type": "string", "description": "Episode slug", "name": "slug", "in": "path", "required": true}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/models.Episode"}},
                    "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/dto.ErrorResponseDTO"}}
                }
            }
        },
        "/api/v1/guests": {
            "get": {
                "produces": ["application/json"],
                "tags": ["guests"],
                "summary": "List guests",
                "responses": {
                    "200": {"description": "OK", "schema": {"type": "array", "items": {"$ref": "#/definitions/models.GuestProfile"}}}
                }
            }
        },
        "/api/v1/guests/{slug}": {
            "get": {
                "description": "Guest profile with the guest's episodes",
                "produces": ["application/json"],
                "tags": ["guests"],
                "summary": "Get guest by slug",
                "parameters": [
                    {"type": "string", "description": "Guest slug", "name": "slug", "in": "path", "required": true}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/content.GuestPage"}},
                    "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/dto.ErrorResponseDTO"}}
                }
            }
        },
        "/api/v1/home": {
            "get": {
                "description": "Featured episode, recent episodes and articles, guests and topics",
                "produces": ["application/json"],
                "tags": ["home"],
                "summary": "Landing page bundle",
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/content.Home"}}
                }
            }
        },
        "/api/v1/topics": {
            "get": {
                "description": "Topics with episode and article counts",
                "produces": ["application/json"],
                "tags": ["topics"],
                "summary": "List topics",
                "responses": {
                    "200": {"description": "OK", "schema": {"type": "array", "items": {"$ref": "#/definitions/models.Topic"}}}
                }
            }
        },
        "/api/v1/topics/{slug}": {
            "get": {
                "description": "Topic with related episodes, articles and guests",
                "produces": ["application/json"],
                "tags": ["topics"],
                "summary": "Get topic page",
                "parameters": [
                    {"type": "string", "description": "Topic slug", "name": "slug", "in": "path", "required": true}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/content.TopicPage"}},
                    "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/dto.ErrorResponseDTO"}}
                }
            }
        },
        "/api/v1/topics/{slug}/articles": {
            "get": {
                "produces": ["application/json"],
                "tags": ["topics"],
                "summary": "Articles of a topic",
                "parameters": [
                    {"type": "string", "description": "Topic slug", "name": "slug", "in": "path", "required": true}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"type": "array", "items": {"$ref": "#/definitions/models.Article"}}}
                }
            }
        },
        "/api/v1/topics/{slug}/episodes": {
            "get": {
                "produces": ["application/json"],
                "tags": ["topics"],
                "summary": "Episodes of a topic",
                "parameters": [
                    {"type": "string", "description": "Topic slug", "name": "slug", "in": "path", "required": true}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"type": "array", "items": {"$ref": "#/definitions/models.Episode"}}}
                }
            }
        },
        "/api/v1/topics/{slug}/guests": {
            "get": {
                "produces": ["application/json"],
                "tags": ["topics"],
                "summary": "Guests of a topic",
                "parameters": [
                    {"type": "string", "description": "Topic slug", "name": "slug", "in": "path", "required": true}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"type": "array", "items": {"$ref": "#/definitions/models.GuestProfile"}}}
                }
            }
        }
    },
    "definitions": {
        "content.GuestPage": {
            "type": "object",
            "properties": {
                "episodes": {"type": "array", "items": {"$ref": "#/definitions/models.Episode"}},
                "guest": {"$ref": "#/definitions/models.GuestProfile"}
            }
        },
        "content.Home": {
            "type": "object",
            "properties": {
                "featured": {"$ref": "#/definitions/models.Episode"},
                "guests": {"type": "array", "items": {"$ref": "#/definitions/models.GuestProfile"}},
                "recent_articles": {"type": "array", "items": {"$ref": "#/definitions/models.Article"}},
                "recent_episodes": {"type": "array", "items": {"$ref": "#/definitions/models.Episode"}},
                "topics": {"type": "array", "items": {"$ref": "#/definitions/models.Topic"}}
            }
        },
        "content.TopicPage": {
            "type": "object",
            "properties": {
                "articles": {"type": "array", "items": {"$ref": "#/definitions/models.Article"}},
                "episodes": {"type": "array", "items": {"$ref": "#/definitions/models.Episode"}},
                "guests": {"type": "array", "items": {"$ref": "#/definitions/models.GuestProfile"}},
                "topic": {"$ref": "#/definitions/models.Topic"}
            }
        },
        "dto.ArticleListDTO": {
            "type": "object",
            "properties": {
                "count": {"type": "integer"},
                "filter": {"$ref": "#/definitions/dto.FilterDTO"},
                "items": {"type": "array", "items": {"$ref": "#/definitions/models.Article"}},
                "summary": {"type": "string", "example": "Showing 1 article"},
                "topics": {"type": "array", "items": {"$ref": "#/definitions/dto.FilterItem"}}
            }
        },
        "dto.EpisodeListDTO": {
            "type": "object",
            "properties": {
                "count": {"type": "integer"},
                "filter": {"$ref": "#/definitions/dto.FilterDTO"},
                "items": {"type": "array", "items": {"$ref": "#/definitions/models.Episode"}},
                "summary": {"type": "string", "example": "Showing 3 episodes"},
                "topics": {"type": "array", "items": {"$ref": "#/definitions/dto.FilterItem"}}
            }
        },
        "dto.ErrorResponseDTO": {
            "type": "object",
            "properties": {
                "error": {"type": "string", "example": "not found"}
            }
        },
        "dto.HealthResponseDTO": {
            "type": "object",
            "properties": {
                "cms": {"type": "string", "example": "up"},
                "status": {"type": "string", "example": "ok"}
            }
        },
        "dto.StatusResponseDTO": {
            "type": "object",
            "properties": {
                "cms_api_base": {"type": "string", "example": "http://localhost:1337/api"},
                "cms_enabled": {"type": "boolean"},
                "cms_url": {"type": "string", "example": "http://localhost:1337"},
                "revalidate_seconds": {"type": "integer", "example": 60}
            }
        },
        "dto.FilterDTO": {
            "type": "object",
            "properties": {
                "q": {"type": "string"},
                "query": {"type": "string", "example": "sort=popular&topic=DevOps"},
                "sort": {"type": "string", "example": "newest"},
                "topic": {"type": "string"}
            }
        },
        "dto.FilterItem": {
            "type": "object",
            "properties": {
                "count": {"type": "integer"},
                "name": {"type": "string"}
            }
        },
        "models.Article": {
            "type": "object",
            "properties": {
                "author": {"$ref": "#/definitions/models.Author"},
                "date": {"type": "string", "example": "Nov 18, 2024"},
                "description": {"type": "string"},
                "image": {"type": "string"},
                "read_time": {"type": "string", "example": "8 min read"},
                "slug": {"type": "string"},
                "title": {"type": "string"},
                "topic": {"type": "string"}
            }
        },
        "models.Author": {
            "type": "object",
            "properties": {
                "name": {"type": "string"},
                "photo": {"type": "string"},
                "title": {"type": "string"}
            }
        },
        "models.Episode": {
            "type": "object",
            "properties": {
                "audio_url": {"type": "string"},
                "cover": {"type": "string"},
                "date": {"type": "string", "example": "Nov 20, 2024"},
                "description": {"type": "string"},
                "duration": {"type": "string", "example": "52:14"},
                "episode_number": {"type": "integer"},
                "guest": {"$ref": "#/definitions/models.Guest"},
                "plays": {"type": "integer"},
                "slug": {"type": "string"},
                "title": {"type": "string"},
                "topics": {"type": "array", "items": {"type": "string"}}
            }
        },
        "models.Guest": {
            "type": "object",
            "properties": {
                "company": {"type": "string"},
                "name": {"type": "string"},
                "photo": {"type": "string"},
                "title": {"type": "string"}
            }
        },
        "models.GuestProfile": {
            "type": "object",
            "properties": {
                "bio": {"type": "string"},
                "company": {"type": "string"},
                "episode_count": {"type": "integer"},
                "name": {"type": "string"},
                "photo": {"type": "string"},
                "slug": {"type": "string"},
                "social": {"$ref": "#/definitions/models.Social"},
                "title": {"type": "string"},
                "topics": {"type": "array", "items": {"type": "string"}}
            }
        },
        "models.Social": {
            "type": "object",
            "properties": {
                "linkedin": {"type": "string"},
                "twitter": {"type": "string"},
                "website": {"type": "string"}
            }
        },
        "models.Topic": {
            "type": "object",
            "properties": {
                "count": {"$ref": "#/definitions/models.TopicCount"},
                "icon": {"type": "string"},
                "name": {"type": "string"},
                "slug": {"type": "string"}
            }
        },
        "models.TopicCount": {
            "type": "object",
            "properties": {
                "articles": {"type": "integer"},
                "episodes": {"type": "integer"}
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
	Title:            "Content Hub API",
	Description:      "Podcast episodes, articles, guests and topics from the CMS with a static fallback",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
	LeftDelim:        "{{",
	RightDelim:       "}}",
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}

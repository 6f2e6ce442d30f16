package dto

// ErrorResponseDTO는 공통 에러 응답 형식을 통일하기 위한 DTO이다.
type ErrorResponseDTO struct {
	Error string `json:"error" example:"not found"`
}

// HealthResponseDTO는 /health 응답이다. CMS 가 꺼져 있으면 cms 는 "disabled" 이다.
type HealthResponseDTO struct {
	Status string `json:"status" example:"ok"`
	CMS    string `json:"cms" example:"up"`
}

// StatusResponseDTO는 게이트웨이가 어떤 소스를 읽고 있는지 보여준다.
type StatusResponseDTO struct {
	CMSEnabled        bool   `json:"cms_enabled"`
	CMSURL            string `json:"cms_url" example:"http://localhost:1337"`
	CMSAPIBase        string `json:"cms_api_base" example:"http://localhost:1337/api"`
	RevalidateSeconds int    `json:"revalidate_seconds" example:"60"`
}

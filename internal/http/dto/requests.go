package dto

type RegisterRequest struct {
	Username string `json:"username" form:"username"`
	Email    string `json:"email" form:"email"`
	Password string `json:"password" form:"password"`
}

type LoginRequest struct {
	Username string `json:"username" form:"username"`
	Password string `json:"password" form:"password"`
}

type UpdateProfileRequest struct {
	OrgName       *string `json:"org_name" form:"org_name"`
	OrgObjectives *string `json:"org_objectives" form:"org_objectives"`
}

// Campaigns

type CreateCampaignRequest struct {
	Title      string `json:"title" form:"title"`
	Objectives string `json:"objectives" form:"objectives"`
}

type UpdateCampaignRequest struct {
	Title      string `json:"title" form:"title"`
	Objectives string `json:"objectives" form:"objectives"`
}

// Campaign items. Sent as JSON or as a multipart form when the optional
// image/video files ride along.

type ItemRequest struct {
	Title        string `json:"title" form:"title"`
	InputContent string `json:"input_content" form:"input_content"`
}

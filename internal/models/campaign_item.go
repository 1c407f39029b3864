package models

import (
	"time"

	"github.com/google/uuid"
)

// CampaignItem is one piece of content within a campaign. InputContent
// is the user's brief; the platform fields and the two prompts are
// filled by the generation adapter.
type CampaignItem struct {
	ID         uuid.UUID `json:"id"`
	CampaignID uuid.UUID `json:"campaign_id"`
	Title      string    `json:"title"`

	InputContent     string  `json:"input_content"`
	LinkedInContent  *string `json:"linkedin_content,omitempty"`
	XContent         *string `json:"x_content,omitempty"`
	FacebookContent  *string `json:"facebook_content,omitempty"`
	InstagramContent *string `json:"instagram_content,omitempty"`
	YouTubeContent   *string `json:"youtube_content,omitempty"`
	QuoraContent     *string `json:"quora_content,omitempty"`
	RedditContent    *string `json:"reddit_content,omitempty"`
	BlogContent      *string `json:"blog_content,omitempty"`
	ImagePrompt      *string `json:"image_prompt,omitempty"`
	VideoPrompt      *string `json:"video_prompt,omitempty"`

	ImagePath *string `json:"image_path,omitempty"`
	VideoPath *string `json:"video_path,omitempty"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// ApplyFieldSet overwrites every generated field with the adapter result.
func (i *CampaignItem) ApplyFieldSet(fs *FieldSet) {
	i.LinkedInContent = &fs.LinkedInContent
	i.XContent = &fs.XContent
	i.FacebookContent = &fs.FacebookContent
	i.InstagramContent = &fs.InstagramContent
	i.YouTubeContent = &fs.YouTubeContent
	i.QuoraContent = &fs.QuoraContent
	i.RedditContent = &fs.RedditContent
	i.BlogContent = &fs.BlogContent
	i.ImagePrompt = &fs.ImagePrompt
	i.VideoPrompt = &fs.VideoPrompt
}

// FieldSet is the ten-key structured result of one generation call.
// Keys mirror the JSON object the model is asked to return.
type FieldSet struct {
	LinkedInContent  string `json:"linkedin_content"`
	XContent         string `json:"x_content"`
	FacebookContent  string `json:"facebook_content"`
	InstagramContent string `json:"instagram_content"`
	YouTubeContent   string `json:"youtube_content"`
	QuoraContent     string `json:"quora_content"`
	RedditContent    string `json:"reddit_content"`
	BlogContent      string `json:"blog_content"`
	ImagePrompt      string `json:"image_prompt"`
	VideoPrompt      string `json:"video_prompt"`
}

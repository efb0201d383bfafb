// Copyright (c) 2026 Moving Bridge. All rights reserved.

/*
Package content implements the community surface of the platform: job
postings, admin notices, forum posts, and emoji reactions.

Reactions are per-principal sets: (subject, user, emoji) is unique, and
reacting twice with the same emoji toggles it off.
*/
package content

import "time"

// # Domain Entities

// Job is a posted job opening.
type Job struct {
	ID          string    `json:"id"`
	Title       string    `json:"title"`
	CompanyName string    `json:"company_name"`
	Contact     string    `json:"contact"`
	Description string    `json:"description"`
	CreatedBy   string    `json:"created_by"`
	CreatorName string    `json:"creator_name"`
	CreatedAt   time.Time `json:"created_at"`
}

// Notice is a platform announcement. Creation is admin-only.
type Notice struct {
	ID        string    `json:"id"`
	Title     string    `json:"title"`
	Body      string    `json:"body"`
	CreatedAt time.Time `json:"created_at"`
}

// ForumPost is a free-form community post. The author field carries the
// creating principal's display name.
type ForumPost struct {
	ID        string    `json:"id"`
	Author    string    `json:"author"`
	Title     string    `json:"title"`
	Body      string    `json:"body"`
	CreatedAt time.Time `json:"created_at"`
}

// # Field Identifiers

const (
	FieldTitle       = "title"
	FieldCompanyName = "company_name"
	FieldContact     = "contact"
	FieldDescription = "description"
	FieldBody        = "body"
	FieldEmoji       = "emoji"
)

// # Validation Constraints

const (
	TitleMinLen       = 2
	TitleMaxLen       = 100
	DescriptionMaxLen = 2000
	BodyMaxLen        = 2000
	EmojiMaxLen       = 16
)

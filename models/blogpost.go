package models

import "time"

// Author is the first/last name pair stored with each post
type Author struct {
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
}

// FullName is the display form of the author used in API responses
func (a Author) FullName() string {
	return a.FirstName + " " + a.LastName
}

// BlogPost is the stored document
type BlogPost struct {
	ID      string    `json:"id"`      // uuid assigned on create
	Title   string    `json:"title"`   // required
	Content string    `json:"content"` // required
	Author  Author    `json:"author"`  // stored as a first/last pair
	Created time.Time `json:"created"` // set once on insert
}

// BlogPostView is the shape returned by the HTTP API
type BlogPostView struct {
	ID      string    `json:"id"`
	Title   string    `json:"title"`
	Content string    `json:"content"`
	Author  string    `json:"author"`
	Created time.Time `json:"created"`
}

// Serialize converts the post into its API representation
func (p *BlogPost) Serialize() BlogPostView {
	return BlogPostView{
		ID:      p.ID,
		Title:   p.Title,
		Content: p.Content,
		Author:  p.Author.FullName(),
		Created: p.Created,
	}
}

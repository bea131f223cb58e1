package model

type PostDetailed struct {
	Post        *Post  `json:"post"`
	AuthorName  string `json:"author_name"`
	AuthorEmail string `json:"author_email"`
}

// Package blog is a small persistent model used by the analyze tests.
package blog

// Post is an article with comments, tags and authors.
//
//orm:entity
type Post struct {
	ID       int64
	Title    string
	Comments []*Comment `orm:"one_to_many,mappedBy=Post"`
	Tags     []Tag      `orm:"one_to_many"`
	Authors  []*Author  `orm:"one_to_many,mappedBy=Writes"`
	Blog     *Blog      `orm:"many_to_one"`
}

// NewPost returns an empty post.
func NewPost() *Post {
	return &Post{}
}

//orm:entity
type Comment struct {
	ID   int64
	Body string
	Post *Post `orm:"many_to_one"`
}

// NewComment creates a comment on post.
func NewComment(post *Post, body string) *Comment {
	return &Comment{Post: post, Body: body}
}

// Tag is attached to posts through an accessor.
type Tag struct {
	Name string
	post *Post
}

//orm:many_to_one
func (t Tag) getPost() *Post {
	return t.post
}

// Author has no back-reference to posts.
type Author struct {
	Name string
}

//orm:entity
type Blog struct {
	posts []*Post
}

// GetPosts lists the blog's posts.
//
//orm:one_to_many mappedBy=blog
func (b *Blog) GetPosts() []*Post {
	return b.posts
}

// Category is a self-referencing tree.
//
//orm:entity
type Category struct {
	Parent   *Category   `orm:"many_to_one"`
	Children []*Category `orm:"one_to_many,mappedBy=Parent"`
}

// Page is generic and carries no markers.
type Page[T any] struct {
	Items [3]T
	Next  map[string]*Page[T] `orm:"-"`
}

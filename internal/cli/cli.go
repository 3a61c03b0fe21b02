// Package cli is the interactive command front-end. It is a convenience
// alias over the same services the HTTP boundary calls and has no semantics
// of its own.
package cli

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/ForumApp/community-service/internal/dto"
	"github.com/ForumApp/community-service/internal/service"
)

type Prompt struct {
	services *service.Service
	in       *bufio.Scanner
	out      io.Writer
}

func New(services *service.Service, in io.Reader, out io.Writer) *Prompt {
	return &Prompt{
		services: services,
		in:       bufio.NewScanner(in),
		out:      out,
	}
}

// Run reads commands line by line until "exit" or end of input.
func (p *Prompt) Run(ctx context.Context) {
	fmt.Fprint(p.out, "Enter command: ")

	for p.in.Scan() {
		switch strings.TrimSpace(p.in.Text()) {
		case "user creates community":
			p.createCommunity(ctx)
		case "user subscribes to a community":
			p.subscribe(ctx)
		case "user creates a post":
			p.createPost(ctx)
		case "user adds comment":
			p.addComment(ctx)
		case "user upvotes post":
			p.upvote(ctx)
		case "create user":
			p.createUser(ctx)
		case "exit":
			return
		default:
			fmt.Fprintln(p.out, "Invalid command")
		}

		fmt.Fprint(p.out, "Enter command: ")
	}
}

func (p *Prompt) prompt(text string) string {
	fmt.Fprint(p.out, text)
	if !p.in.Scan() {
		return ""
	}

	return strings.TrimSpace(p.in.Text())
}

func (p *Prompt) createCommunity(ctx context.Context) {
	input := dto.CreateCommunityRequest{
		Name:        p.prompt("Enter community name: "),
		Description: p.prompt("Enter community description: "),
	}

	community, err := p.services.Community.Create(ctx, input)
	if err != nil {
		fmt.Fprintf(p.out, "Failed to create community: %s\n", err.Error())
		return
	}

	fmt.Fprintf(p.out, "Community created: %s\n", community.Name)
}

func (p *Prompt) subscribe(ctx context.Context) {
	userID := p.prompt("Enter user ID: ")
	communityID := p.prompt("Enter community ID to subscribe: ")

	if err := p.services.Social.Subscribe(ctx, userID, communityID); err != nil {
		fmt.Fprintf(p.out, "Failed to subscribe: %s\n", err.Error())
		return
	}

	fmt.Fprintf(p.out, "User %s subscribed to community %s\n", userID, communityID)
}

func (p *Prompt) createPost(ctx context.Context) {
	communityID := p.prompt("Enter community ID to post in: ")
	input := dto.CreatePostRequest{
		Title:   p.prompt("Enter post title: "),
		Content: p.prompt("Enter post content: "),
		Author:  p.prompt("Enter user ID: "),
	}

	post, err := p.services.Community.CreatePost(ctx, communityID, input)
	if err != nil {
		fmt.Fprintf(p.out, "Community with ID %s not found.\n", communityID)
		return
	}

	fmt.Fprintf(p.out, "New post created in community %s: %s\n", communityID, post.Title)
}

func (p *Prompt) addComment(ctx context.Context) {
	postID := p.prompt("Enter post ID to comment on: ")
	input := dto.CreateCommentRequest{
		Text:   p.prompt("Enter comment text: "),
		Author: p.prompt("Enter comment author: "),
	}

	comment, err := p.services.Community.AddComment(ctx, postID, input)
	if err != nil {
		fmt.Fprintf(p.out, "Post with ID %s not found.\n", postID)
		return
	}

	fmt.Fprintf(p.out, "New comment added to post %s: %s\n", postID, comment.Text)
}

func (p *Prompt) upvote(ctx context.Context) {
	postID := p.prompt("Enter post ID to upvote: ")
	userID := p.prompt("Enter user ID who is upvoting: ")

	post, err := p.services.Social.Upvote(ctx, postID, userID)
	if err != nil {
		fmt.Fprintf(p.out, "Post with ID %s not found.\n", postID)
		return
	}

	fmt.Fprintf(p.out, "Post %s upvoted. Current upvotes: %d\n", postID, post.Upvotes)
}

func (p *Prompt) createUser(ctx context.Context) {
	input := dto.CreateUserRequest{
		UserID: p.prompt("Enter user ID: "),
	}

	user, err := p.services.Social.CreateUser(ctx, input)
	if err != nil {
		fmt.Fprintf(p.out, "Failed to create user: %s\n", err.Error())
		return
	}

	fmt.Fprintf(p.out, "User created: %s\n", user.ID)
}

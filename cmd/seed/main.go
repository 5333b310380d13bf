// Seed tool: fills the configured database with fake users and posts for local development.
package main

import (
	"blogly/db"
	"blogly/models"
	"context"
	"flag"
	"log"
	"time"

	"github.com/brianvoe/gofakeit"
)

func main() {
	var numUsers, postsPerUser int
	flag.IntVar(&numUsers, "users", 10, "number of users")
	flag.IntVar(&postsPerUser, "posts", 3, "posts per user")
	flag.Parse()

	db.Init()
	models.Init()

	gofakeit.Seed(time.Now().UnixNano())
	start := time.Now()
	if err := seed(context.Background(), models.NewRepository(db.Instance), numUsers, postsPerUser); err != nil {
		log.Fatalf("seed failed: %v", err)
	}
	log.Printf("seeded %d users with %d posts each in %s", numUsers, postsPerUser, time.Since(start).Truncate(time.Millisecond))
}

func seed(ctx context.Context, repo models.Repository, numUsers, postsPerUser int) error {
	for i := 0; i < numUsers; i++ {
		user, err := repo.CreateUser(ctx, gofakeit.FirstName(), gofakeit.LastName(), "")
		if err != nil {
			return err
		}
		for j := 0; j < postsPerUser; j++ {
			title := gofakeit.Sentence(gofakeit.Number(3, 8))
			content := gofakeit.Paragraph(gofakeit.Number(1, 3), 4, 12, "\n\n")
			if _, err = repo.CreatePost(ctx, user.ID, title, content); err != nil {
				return err
			}
		}
	}
	return nil
}

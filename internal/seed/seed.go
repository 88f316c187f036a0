package seed

import (
	"fmt"
	"log"

	"ripple/internal/models"

	"gorm.io/gorm"
)

// Options configuration for the seeder
type Options struct {
	NumUsers    int
	NumPosts    int
	ShouldClean bool
}

// Seed populates the database with generated users, posts, likes and
// comments.
func Seed(db *gorm.DB, opts Options) error {
	log.Printf("🌱 Starting database seeding with %d users and %d posts...", opts.NumUsers, opts.NumPosts)

	if opts.ShouldClean {
		if err := clearData(db); err != nil {
			return fmt.Errorf("failed to clear existing data: %w", err)
		}
		log.Println("✓ Existing data cleared")
	}

	f := NewFactory(db)

	users, err := f.CreateUsers(opts.NumUsers)
	if err != nil {
		return fmt.Errorf("failed to create users: %w", err)
	}
	log.Printf("✓ %d users created", len(users))

	posts := make([]*models.Post, 0, opts.NumPosts)
	for i := 0; i < opts.NumPosts; i++ {
		author := users[f.rng.Intn(len(users))]
		post, err := f.CreatePost(author)
		if err != nil {
			return fmt.Errorf("failed to create posts: %w", err)
		}
		posts = append(posts, post)
	}
	log.Printf("✓ %d posts created", len(posts))

	likes, comments := 0, 0
	for _, post := range posts {
		for _, user := range users {
			// roughly a third of users engage with each post
			if f.rng.Intn(3) != 0 {
				continue
			}
			// one in five seeded likes is inactive (liked then unliked)
			active := f.rng.Intn(5) != 0
			if _, err := f.CreateLike(user, post, active); err != nil {
				return fmt.Errorf("failed to create likes: %w", err)
			}
			likes++

			if f.rng.Intn(2) == 0 {
				if _, err := f.CreateComment(user, post); err != nil {
					return fmt.Errorf("failed to create comments: %w", err)
				}
				comments++
			}
		}
	}
	log.Printf("✓ %d likes and %d comments created", likes, comments)

	log.Println("✨ Database seeding complete")
	return nil
}

// clearData removes all seeded rows in dependency order.
func clearData(db *gorm.DB) error {
	for _, model := range []any{
		&models.Comment{},
		&models.Like{},
		&models.Post{},
		&models.User{},
	} {
		if err := db.Where("1 = 1").Delete(model).Error; err != nil {
			return err
		}
	}
	return nil
}

package main

import (
	"database/sql"
	"fmt"
	"log"
	"math/rand"
	"time"

	"github.com/google/uuid"
	_ "github.com/mattn/go-sqlite3"
	"golang.org/x/crypto/bcrypt"
)

var sampleNotes = []struct {
	title   string
	content string
}{
	{"Morning meeting", "Had a productive morning meeting"},
	{"Quarterly report", "Finished the quarterly report"},
	{"Code review", "Reviewed pull requests"},
	{"Hotfix", "Fixed a critical bug in production"},
	{"Standup", "Standup notes: discussed blockers"},
	{"Ideas", "Brainstormed new feature ideas"},
	{"Docs", "Updated documentation"},
	{"Deploy", "Deployed new version to staging"},
	{"Performance", "Worked on performance optimization"},
	{"Feedback", "Customer feedback review"},
	{"Sprint planning", "Sprint planning completed"},
	{"Refactor", "Refactored authentication module"},
	{"Tests", "Added unit tests for new feature"},
	{"Research", "Researched new technologies"},
	{"Weekly sync", "Weekly sync with stakeholders"},
}

func main() {
	db, err := sql.Open("sqlite3", "./cleverpad.db")
	if err != nil {
		log.Fatal(err)
	}
	defer db.Close()

	// Demo account
	hash, err := bcrypt.GenerateFromPassword([]byte("demo-password"), bcrypt.DefaultCost)
	if err != nil {
		log.Fatal(err)
	}
	result, err := db.Exec(
		"INSERT INTO accounts (name, email, password_hash) VALUES (?, ?, ?)",
		"Demo", "demo@cleverpad.local", string(hash),
	)
	if err != nil {
		log.Fatalf("Could not create demo account: %v", err)
	}
	accountID, _ := result.LastInsertId()
	fmt.Printf("Created demo account %d (demo@cleverpad.local / demo-password)\n", accountID)

	// Insert notes for the past year
	now := time.Now()
	oneYearAgo := now.AddDate(-1, 0, 0)
	inserted := 0

	for day := oneYearAgo; day.Before(now); day = day.AddDate(0, 0, 1) {
		// Random number of notes per day (0-3)
		numNotes := rand.Intn(4)
		for i := 0; i < numNotes; i++ {
			hour := rand.Intn(14) + 8 // 8 AM to 10 PM
			minute := rand.Intn(60)
			noteTime := time.Date(day.Year(), day.Month(), day.Day(), hour, minute, 0, 0, day.Location())

			note := sampleNotes[rand.Intn(len(sampleNotes))]

			_, err := db.Exec(
				"INSERT INTO notes (title, content, owner_id, session_id, created_at) VALUES (?, ?, ?, NULL, ?)",
				note.title, note.content, accountID, noteTime,
			)
			if err != nil {
				log.Printf("Error inserting note: %v", err)
				continue
			}
			inserted++
		}
	}

	fmt.Printf("Inserted %d notes for account %d over the past year\n", inserted, accountID)

	// A guest session with a couple of notes, handy for trying the MCP tools
	sessionID := uuid.New().String()
	for i, note := range sampleNotes[:3] {
		_, err := db.Exec(
			"INSERT INTO notes (title, content, owner_id, session_id, created_at) VALUES (?, ?, NULL, ?, ?)",
			note.title, note.content, sessionID, now.Add(time.Duration(i)*time.Minute),
		)
		if err != nil {
			log.Printf("Error inserting guest note: %v", err)
		}
	}
	fmt.Printf("Created guest session %s with 3 notes\n", sessionID)
}

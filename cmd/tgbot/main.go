package main

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"net/http"
	"os"
	"strconv"
	"strings"
	"time"

	auth "github.com/KhiZeus/PlaneProject/internal/auth"
	repo "github.com/KhiZeus/PlaneProject/internal/repo"
)

type Update struct {
	UpdateID int      `json:"update_id"`
	Message  *Message `json:"message"`
}

type Message struct {
	MessageID int    `json:"message_id"`
	Chat      Chat   `json:"chat"`
	Text      string `json:"text"`
}

type Chat struct {
	ID int64 `json:"id"`
}

type UpdateResponse struct {
	OK     bool     `json:"ok"`
	Result []Update `json:"result"`
}

// Admin bot for the sizing service: grants and revokes premium access to the
// batch/import/concept tools. Commands: "grant <login> [days]",
// "revoke <login>".
func main() {
	token := os.Getenv("TOKEN_BOT")
	peerStr := os.Getenv("ADMIN_PEER_ID")
	if token == "" || peerStr == "" {
		log.Fatal("TOKEN_BOT or ADMIN_PEER_ID missing")
	}
	adminID, _ := strconv.ParseInt(peerStr, 10, 64)

	db := auth.InitDB()
	defer db.Close()
	users := repo.NewPostgresUserDB(db)

	offset := 0
	for {
		updates, err := getUpdates(token, offset)
		if err != nil {
			log.Println("getUpdates error:", err)
			time.Sleep(2 * time.Second)
			continue
		}
		for _, u := range updates {
			offset = u.UpdateID + 1
			if u.Message != nil {
				handleCommand(token, adminID, users, u.Message)
			}
		}
		time.Sleep(1 * time.Second)
	}
}

func handleCommand(token string, adminID int64, users *repo.PostgresUserRepository, msg *Message) {
	if msg.Chat.ID != adminID {
		sendMessage(token, msg.Chat.ID, "Not allowed")
		return
	}
	parts := strings.Fields(msg.Text)
	if len(parts) < 2 {
		sendMessage(token, msg.Chat.ID, "Usage: grant <login> [days] | revoke <login>")
		return
	}
	action, login := parts[0], parts[1]

	switch action {
	case "grant":
		days := 30
		if len(parts) > 2 {
			if d, err := strconv.Atoi(parts[2]); err == nil && d > 0 {
				days = d
			}
		}
		until := time.Now().Add(time.Duration(days) * 24 * time.Hour)
		if err := users.SetPremium(context.Background(), login, until); err != nil {
			sendMessage(token, msg.Chat.ID, "DB error: "+err.Error())
			return
		}
		sendMessage(token, msg.Chat.ID, fmt.Sprintf("Premium for %s until %s", login, until.Format("2006-01-02")))
	case "revoke":
		if err := users.SetPremium(context.Background(), login, time.Now()); err != nil {
			sendMessage(token, msg.Chat.ID, "DB error: "+err.Error())
			return
		}
		sendMessage(token, msg.Chat.ID, "Premium revoked for "+login)
	default:
		sendMessage(token, msg.Chat.ID, "Unknown action "+action)
	}
}

func getUpdates(token string, offset int) ([]Update, error) {
	url := fmt.Sprintf("https://api.telegram.org/bot%s/getUpdates?timeout=20&offset=%d", token, offset)
	res, err := http.Get(url)
	if err != nil {
		return nil, err
	}
	defer res.Body.Close()
	var out UpdateResponse
	if err := json.NewDecoder(res.Body).Decode(&out); err != nil {
		return nil, err
	}
	return out.Result, nil
}

func sendMessage(token string, chatID int64, text string) {
	url := fmt.Sprintf("https://api.telegram.org/bot%s/sendMessage", token)
	payload := map[string]any{"chat_id": chatID, "text": text}
	b, _ := json.Marshal(payload)
	_, _ = http.Post(url, "application/json", strings.NewReader(string(b)))
}

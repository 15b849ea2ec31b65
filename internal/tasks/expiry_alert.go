package tasks

import (
	"context"
	"fmt"
	"log"
	"strings"

	"github.com/hibikero/nutributler/domain"
	"github.com/hibikero/nutributler/internal/utils/mailing"
	"github.com/hibikero/nutributler/pkg/pantry"
	"github.com/hibikero/nutributler/pkg/user"
	"github.com/robfig/cron/v3"
)

// expiringWindowDays is how far ahead the daily digest looks.
const expiringWindowDays = 7

// ExpiryAlertTask runs the scheduled pantry sweeps: a daily digest mail at
// 02:00 listing each user's expiring ingredients, and an hourly sweep that
// logs expired counts.
type ExpiryAlertTask struct {
	cron           *cron.Cron
	userRepository user.UserRepository
	pantryService  pantry.PantryService
}

func NewExpiryAlertTask(userRepository user.UserRepository, pantryService pantry.PantryService) *ExpiryAlertTask {
	return &ExpiryAlertTask{
		cron:           cron.New(),
		userRepository: userRepository,
		pantryService:  pantryService,
	}
}

func (t *ExpiryAlertTask) Start() error {
	if _, err := t.cron.AddFunc("0 2 * * *", t.SendDailyDigest); err != nil {
		return err
	}
	if _, err := t.cron.AddFunc("0 * * * *", t.SweepExpired); err != nil {
		return err
	}
	t.cron.Start()
	return nil
}

func (t *ExpiryAlertTask) Stop() {
	t.cron.Stop()
}

// SendDailyDigest mails every user with a registered email address a summary
// of their ingredients expiring within the next week.
func (t *ExpiryAlertTask) SendDailyDigest() {
	ctx := context.Background()

	users, err := t.userRepository.GetAllUsers(ctx)
	if err != nil {
		log.Printf("expiry digest: listing users failed: %v", err)
		return
	}

	for _, u := range users {
		if u.Email == "" {
			continue
		}

		items, err := t.pantryService.GetExpiringIngredients(ctx, u.ID.String(), expiringWindowDays)
		if err != nil {
			log.Printf("expiry digest: fetching pantry for %s failed: %v", u.Username, err)
			continue
		}
		if len(items) == 0 {
			continue
		}

		body := buildDigestBody(u.Nickname, u.Username, items)
		if err := mailing.SendMail(u.Email, "Your ingredients are expiring soon", body); err != nil {
			log.Printf("expiry digest: mailing %s failed: %v", u.Email, err)
		}
	}
}

// SweepExpired logs per-user expired counts so operators can watch spoilage
// trends between digests.
func (t *ExpiryAlertTask) SweepExpired() {
	ctx := context.Background()

	users, err := t.userRepository.GetAllUsers(ctx)
	if err != nil {
		log.Printf("expiry sweep: listing users failed: %v", err)
		return
	}

	var total int64
	for _, u := range users {
		stats, err := t.pantryService.GetPantryStats(ctx, u.ID.String())
		if err != nil {
			log.Printf("expiry sweep: stats for %s failed: %v", u.Username, err)
			continue
		}
		total += stats.ExpiredItems
	}

	log.Printf("expiry sweep: %d expired items across %d users", total, len(users))
}

func buildDigestBody(nickname, username string, items []domain.PantryItemResponse) string {
	name := nickname
	if name == "" {
		name = username
	}

	var b strings.Builder
	fmt.Fprintf(&b, "<p>Hi %s,</p>", name)
	fmt.Fprintf(&b, "<p>These pantry items expire within %d days:</p><ul>", expiringWindowDays)
	for _, item := range items {
		fmt.Fprintf(&b, "<li>%s - %g %s, expires %s (%d days left)</li>",
			item.IngredientName, item.Quantity, item.Unit, item.ExpiryDate, item.RemainingDays)
	}
	b.WriteString("</ul><p>Use them soon to avoid waste.</p>")
	return b.String()
}

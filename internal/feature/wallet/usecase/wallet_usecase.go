package usecase

import (
	"context"
	"fmt"
	"log/slog"

	"parksarthi_backend/internal/feature/users/domain/entity"
	walletentity "parksarthi_backend/internal/feature/wallet/domain/entity"
)

// PointsPerLevel is the points span of a single gamification level.
const PointsPerLevel = 1000

// UserRepository abstracts the user store operations the wallet needs.
// Following Go convention: interfaces are defined by the consumer (usecase), not the provider (adapters).
type UserRepository interface {
	FindByID(ctx context.Context, id string) (*entity.User, error)
	Update(ctx context.Context, u *entity.User) error
}

// Notifier surfaces gamification events (level-ups, unlocks) to the user.
type Notifier interface {
	Notify(title, message string)
}

// Wallet summarizes a user's gamification state.
type Wallet struct {
	Points          int                        `json:"points"`
	Level           int                        `json:"level"`
	LevelName       string                     `json:"level_name"`
	NextLevelPoints int                        `json:"next_level_points"`
	Progress        float64                    `json:"progress"`
	TotalBookings   int                        `json:"total_bookings"`
	Earned          []string                   `json:"earned"`
	Catalog         []walletentity.Achievement `json:"catalog"`
}

// walletUsecase implements the points/levels/achievements logic on top of the
// durable user record.
type walletUsecase struct {
	users    UserRepository
	notifier Notifier
}

// NewWalletUsecase creates a new instance of walletUsecase.
// notifier may be nil, in which case events are only logged.
func NewWalletUsecase(users UserRepository, notifier Notifier) *walletUsecase {
	return &walletUsecase{users: users, notifier: notifier}
}

// levelForPoints derives the level a points balance corresponds to.
func levelForPoints(points int) int {
	return points/PointsPerLevel + 1
}

// LevelName maps a level to its display title.
func LevelName(level int) string {
	names := map[int]string{
		1: "Bronze Parker",
		2: "Silver Parker",
		3: "Gold Parker",
		4: "Platinum Parker",
		5: "Diamond Parker",
		6: "Elite Parker",
		7: "Master Parker",
		8: "Legend Parker",
	}
	if name, ok := names[level]; ok {
		return name
	}
	return fmt.Sprintf("Level %d Parker", level)
}

// LevelProgress reports how far into the current level a points balance is,
// as a percentage clamped to [0, 100].
func LevelProgress(points, level int) float64 {
	base := (level - 1) * PointsPerLevel
	next := level * PointsPerLevel
	progress := float64(points-base) / float64(next-base) * 100
	if progress < 0 {
		return 0
	}
	if progress > 100 {
		return 100
	}
	return progress
}

// AddPoints credits points to the user for the given reason. The level is
// recomputed from the new balance and never decreases.
func (w *walletUsecase) AddPoints(ctx context.Context, userID string, points int, reason string) (*entity.User, error) {
	user, err := w.users.FindByID(ctx, userID)
	if err != nil {
		return nil, err
	}

	user.Points += points
	newLevel := levelForPoints(user.Points)
	leveledUp := newLevel > user.Level
	if leveledUp {
		user.Level = newLevel
	}

	if err := w.users.Update(ctx, user); err != nil {
		return nil, fmt.Errorf("persist points: %w", err)
	}

	slog.Info("points earned", "user", userID, "points", points, "reason", reason, "balance", user.Points)
	w.notify("Points Earned!", fmt.Sprintf("+%d points for %s", points, reason))
	if leveledUp {
		w.notify("Level Up!", fmt.Sprintf("Congratulations! You've reached Level %d!", user.Level))
	}
	return user, nil
}

// RecordBooking bumps the booking counter and credits the booking reward in a
// single update. The level is recomputed from the new balance.
func (w *walletUsecase) RecordBooking(ctx context.Context, userID string, points int) (*entity.User, error) {
	user, err := w.users.FindByID(ctx, userID)
	if err != nil {
		return nil, err
	}

	user.TotalBookings++
	user.Points += points
	newLevel := levelForPoints(user.Points)
	leveledUp := newLevel > user.Level
	if leveledUp {
		user.Level = newLevel
	}

	if err := w.users.Update(ctx, user); err != nil {
		return nil, fmt.Errorf("persist booking reward: %w", err)
	}

	slog.Info("booking recorded", "user", userID, "points", points, "total_bookings", user.TotalBookings)
	w.notify("Points Earned!", fmt.Sprintf("+%d points for booking a parking spot", points))
	if leveledUp {
		w.notify("Level Up!", fmt.Sprintf("Congratulations! You've reached Level %d!", user.Level))
	}
	return user, nil
}

// Redeem debits points for a reward. It returns ErrInsufficientPoints when the
// balance cannot cover the cost; the level is left unchanged by redemption.
func (w *walletUsecase) Redeem(ctx context.Context, userID string, cost int, reward string) (*entity.User, error) {
	user, err := w.users.FindByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	if user.Points < cost {
		return nil, fmt.Errorf("%w: need %d more", ErrInsufficientPoints, cost-user.Points)
	}

	user.Points -= cost
	if err := w.users.Update(ctx, user); err != nil {
		return nil, fmt.Errorf("persist redemption: %w", err)
	}

	slog.Info("reward redeemed", "user", userID, "cost", cost, "reward", reward)
	w.notify("Reward Redeemed!", "Successfully redeemed "+reward)
	return user, nil
}

// UnlockAchievement marks a catalog achievement as earned and credits its
// reward points. Unlocking an already-earned achievement is a no-op.
func (w *walletUsecase) UnlockAchievement(ctx context.Context, userID, achievementID string) (*entity.User, error) {
	achievement, ok := walletentity.ByID(achievementID)
	if !ok {
		return nil, ErrUnknownAchievement
	}

	user, err := w.users.FindByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	for _, earned := range user.Achievements {
		if earned == achievementID {
			return user, nil
		}
	}

	user.Achievements = append(user.Achievements, achievementID)
	user.Points += achievement.PointsReward
	if lvl := levelForPoints(user.Points); lvl > user.Level {
		user.Level = lvl
	}

	if err := w.users.Update(ctx, user); err != nil {
		return nil, fmt.Errorf("persist achievement: %w", err)
	}

	slog.Info("achievement unlocked", "user", userID, "achievement", achievementID)
	w.notify("Achievement Unlocked!", fmt.Sprintf("%s - +%d points", achievement.Name, achievement.PointsReward))
	return user, nil
}

// Wallet assembles the gamification summary for a user.
func (w *walletUsecase) Wallet(ctx context.Context, userID string) (*Wallet, error) {
	user, err := w.users.FindByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	return &Wallet{
		Points:          user.Points,
		Level:           user.Level,
		LevelName:       LevelName(user.Level),
		NextLevelPoints: user.Level * PointsPerLevel,
		Progress:        LevelProgress(user.Points, user.Level),
		TotalBookings:   user.TotalBookings,
		Earned:          user.Achievements,
		Catalog:         walletentity.Catalog,
	}, nil
}

func (w *walletUsecase) notify(title, message string) {
	if w.notifier != nil {
		w.notifier.Notify(title, message)
	}
}

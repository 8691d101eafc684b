package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"testing"
	"time"

	"github.com/actuallystonmai/nutrisathi-service/internal/calorie"
	"github.com/actuallystonmai/nutrisathi-service/internal/domain"
	"github.com/actuallystonmai/nutrisathi-service/internal/recommender"
)

func signup(t *testing.T, svc *Service, email string, profile domain.Profile) *Session {
	t.Helper()
	sess, err := svc.Signup(context.Background(), SignupInput{
		Name: "Asha", Email: email, Password: "s3cret-pass", Profile: profile,
	})
	if err != nil {
		t.Fatalf("signup %s: %v", email, err)
	}
	return sess
}

func TestSignupLoginLogout(t *testing.T) {
	svc, _, _ := newTestService()
	ctx := context.Background()

	sess := signup(t, svc, "  Asha@Example.com ", domain.Profile{})
	if sess.Token == "" {
		t.Fatal("expected a session token")
	}
	if sess.User.Email != "asha@example.com" {
		t.Errorf("expected normalized email, got %q", sess.User.Email)
	}
	if sess.User.PasswordHash == "s3cret-pass" {
		t.Error("password stored in clear text")
	}

	login, err := svc.Login(ctx, "ASHA@example.com", "s3cret-pass")
	if err != nil {
		t.Fatalf("login: %v", err)
	}
	if login.Token == sess.Token {
		t.Error("expected a fresh token per login")
	}

	user, err := svc.Authenticate(ctx, login.Token)
	if err != nil {
		t.Fatalf("authenticate: %v", err)
	}
	if user.ID != sess.User.ID {
		t.Errorf("expected user %d, got %d", sess.User.ID, user.ID)
	}

	if err := svc.Logout(ctx, login.Token); err != nil {
		t.Fatalf("logout: %v", err)
	}
	if _, err := svc.Authenticate(ctx, login.Token); !errors.Is(err, domain.ErrUnauthenticated) {
		t.Errorf("expected ErrUnauthenticated after logout, got %v", err)
	}
}

func TestLoginRejectsBadCredentials(t *testing.T) {
	svc, _, _ := newTestService()
	signup(t, svc, "asha@example.com", domain.Profile{})

	tests := []struct {
		name     string
		email    string
		password string
	}{
		{"wrong password", "asha@example.com", "nope"},
		{"unknown email", "ravi@example.com", "s3cret-pass"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := svc.Login(context.Background(), tt.email, tt.password)
			if !errors.Is(err, domain.ErrInvalidCredentials) {
				t.Errorf("expected ErrInvalidCredentials, got %v", err)
			}
		})
	}
}

func TestSignupDuplicateEmail(t *testing.T) {
	svc, _, _ := newTestService()
	signup(t, svc, "asha@example.com", domain.Profile{})

	_, err := svc.Signup(context.Background(), SignupInput{Name: "A", Email: "ASHA@example.com", Password: "another-one"})
	if !errors.Is(err, domain.ErrEmailTaken) {
		t.Errorf("expected ErrEmailTaken, got %v", err)
	}
}

func TestAuthenticateEmptyToken(t *testing.T) {
	svc, _, _ := newTestService()
	if _, err := svc.Authenticate(context.Background(), ""); !errors.Is(err, domain.ErrUnauthenticated) {
		t.Errorf("expected ErrUnauthenticated, got %v", err)
	}
}

func TestUpdateProfileClearsPlanCache(t *testing.T) {
	svc, _, cache := newTestService()
	ctx := context.Background()
	sess := signup(t, svc, "asha@example.com", completeProfile())

	if _, err := svc.DailyPlan(ctx, sess.User); err != nil {
		t.Fatalf("daily plan: %v", err)
	}

	weight := 80.0
	updated, err := svc.UpdateProfile(ctx, sess.User.ID, domain.ProfileUpdate{Weight: &weight})
	if err != nil {
		t.Fatalf("update profile: %v", err)
	}
	if updated.Weight != 80 || updated.Height != 175 {
		t.Errorf("expected partial update, got %+v", updated.Profile)
	}
	if len(cache.cleared) != 1 || cache.cleared[0] != sess.User.ID {
		t.Errorf("expected cache cleared for user %d, got %v", sess.User.ID, cache.cleared)
	}
	if _, ok := cache.plans[sess.User.ID]; ok {
		t.Error("expected cached plan to be dropped")
	}
}

func TestDailyPlanReadsThroughCache(t *testing.T) {
	svc, _, cache := newTestService()
	ctx := context.Background()
	user := &domain.User{ID: 7, Profile: completeProfile()}

	first, err := svc.DailyPlan(ctx, user)
	if err != nil {
		t.Fatalf("daily plan: %v", err)
	}
	if first.DailyCalories != 2556 {
		t.Errorf("expected 2556 kcal, got %d", first.DailyCalories)
	}

	second, err := svc.DailyPlan(ctx, user)
	if err != nil {
		t.Fatalf("daily plan: %v", err)
	}
	if second != first {
		t.Error("expected the cached plan on the second call")
	}
	if cache.planSets != 1 {
		t.Errorf("expected one cache write, got %d", cache.planSets)
	}
}

func TestDailyPlanIncompleteProfile(t *testing.T) {
	svc, _, _ := newTestService()
	user := &domain.User{ID: 1, Profile: domain.Profile{Age: 30, Gender: "female"}}

	_, err := svc.DailyPlan(context.Background(), user)
	if !errors.Is(err, domain.ErrProfileIncomplete) {
		t.Fatalf("expected ErrProfileIncomplete, got %v", err)
	}
	if !strings.Contains(err.Error(), "weight, height") {
		t.Errorf("expected missing fields in error, got %q", err)
	}
}

func TestCalculateCalories(t *testing.T) {
	svc, _, _ := newTestService()
	ctx := context.Background()

	in := calorie.Input{Weight: 70, Height: 175, Age: 30, Gender: "male"}
	res, err := svc.CalculateCalories(ctx, nil, &in)
	if err != nil {
		t.Fatalf("calculate: %v", err)
	}
	if res.DailyCalories != 2556 {
		t.Errorf("expected 2556 kcal, got %d", res.DailyCalories)
	}

	if _, err := svc.CalculateCalories(ctx, nil, nil); !errors.Is(err, calorie.ErrMissingParameter) {
		t.Errorf("expected ErrMissingParameter, got %v", err)
	}

	user := &domain.User{ID: 3, Profile: completeProfile()}
	res, err = svc.CalculateCalories(ctx, user, nil)
	if err != nil {
		t.Fatalf("calculate from profile: %v", err)
	}
	if res.DailyCalories != 2556 {
		t.Errorf("expected 2556 kcal from profile, got %d", res.DailyCalories)
	}
}

func TestDailyTarget(t *testing.T) {
	svc, _, _ := newTestService()
	ctx := context.Background()

	if got := svc.DailyTarget(ctx, nil); got != calorie.DefaultDailyTarget {
		t.Errorf("expected default target without user, got %d", got)
	}
	if got := svc.DailyTarget(ctx, &domain.User{ID: 1}); got != calorie.DefaultDailyTarget {
		t.Errorf("expected default target for empty profile, got %d", got)
	}
	if got := svc.DailyTarget(ctx, &domain.User{ID: 2, Profile: completeProfile()}); got != 2556 {
		t.Errorf("expected planned target, got %d", got)
	}
}

func TestLogMealRaisesAlert(t *testing.T) {
	svc, _, _ := newTestService()
	ctx := context.Background()
	user := &domain.User{ID: 1}

	breakfast, err := svc.LogMeal(ctx, user, domain.Meal{Name: "Poha", MealType: "Breakfast", Calories: kcal(500)})
	if err != nil {
		t.Fatalf("log breakfast: %v", err)
	}
	if breakfast.CalorieAlert != nil {
		t.Errorf("expected no alert at exactly the slot target, got %+v", breakfast.CalorieAlert)
	}
	if breakfast.MealType != "breakfast" || breakfast.Unit != "g" || breakfast.UserID != 1 {
		t.Errorf("unexpected stored meal %+v", breakfast.Meal)
	}

	lunch, err := svc.LogMeal(ctx, user, domain.Meal{Name: "Biryani", MealType: "lunch", Calories: kcal(1100)})
	if err != nil {
		t.Fatalf("log lunch: %v", err)
	}
	alert := lunch.CalorieAlert
	if alert == nil {
		t.Fatal("expected a calorie alert")
	}
	if alert.Severity != calorie.SeverityHigh || alert.ExcessCalories != 400 {
		t.Errorf("expected high alert with 400 excess, got %s/%d", alert.Severity, alert.ExcessCalories)
	}
	if alert.DailySummary.TotalConsumed != 1600 {
		t.Errorf("expected 1600 kcal consumed, got %d", alert.DailySummary.TotalConsumed)
	}
}

func TestLogMealEveningSnackUsesSnackShare(t *testing.T) {
	svc, _, _ := newTestService()
	got, err := svc.LogMeal(context.Background(), &domain.User{ID: 1}, domain.Meal{Name: "Samosa", MealType: "evening_snack", Calories: kcal(350)})
	if err != nil {
		t.Fatalf("log meal: %v", err)
	}
	alert := got.CalorieAlert
	if alert == nil {
		t.Fatal("expected a calorie alert")
	}
	if alert.MealTarget != 200 || alert.ExcessCalories != 150 {
		t.Errorf("expected target 200 and excess 150, got %d/%d", alert.MealTarget, alert.ExcessCalories)
	}
}

func TestLogMealWithoutTypeSkipsCheck(t *testing.T) {
	svc, _, _ := newTestService()
	got, err := svc.LogMeal(context.Background(), &domain.User{ID: 1}, domain.Meal{Name: "Feast", Calories: kcal(3000)})
	if err != nil {
		t.Fatalf("log meal: %v", err)
	}
	if got.CalorieAlert != nil {
		t.Errorf("expected no alert without meal type, got %+v", got.CalorieAlert)
	}
	if !got.LoggedAt.Equal(testNow) {
		t.Errorf("expected logged at %v, got %v", testNow, got.LoggedAt)
	}
}

func TestDeleteMealOwnership(t *testing.T) {
	svc, store, _ := newTestService()
	ctx := context.Background()

	meal := &domain.Meal{UserID: 1, Name: "Idli", LoggedAt: testNow}
	if err := store.CreateMeal(ctx, meal); err != nil {
		t.Fatal(err)
	}

	if err := svc.DeleteMeal(ctx, 2, meal.ID); !errors.Is(err, domain.ErrForbidden) {
		t.Errorf("expected ErrForbidden, got %v", err)
	}
	if err := svc.DeleteMeal(ctx, 1, meal.ID); err != nil {
		t.Errorf("delete own meal: %v", err)
	}
	if err := svc.DeleteMeal(ctx, 1, meal.ID); !errors.Is(err, domain.ErrMealNotFound) {
		t.Errorf("expected ErrMealNotFound, got %v", err)
	}
}

func TestListMealsNewestFirst(t *testing.T) {
	svc, store, _ := newTestService()
	ctx := context.Background()
	for i := range 3 {
		m := &domain.Meal{UserID: 1, Name: fmt.Sprintf("meal %d", i), LoggedAt: testNow}
		if err := store.CreateMeal(ctx, m); err != nil {
			t.Fatal(err)
		}
	}

	meals, err := svc.ListMeals(ctx, 1, 2)
	if err != nil {
		t.Fatalf("list meals: %v", err)
	}
	if len(meals) != 2 || meals[0].Name != "meal 2" || meals[1].Name != "meal 1" {
		t.Errorf("unexpected meals %+v", meals)
	}
}

func TestTodaySummary(t *testing.T) {
	svc, store, _ := newTestService()
	ctx := context.Background()
	meals := []*domain.Meal{
		{UserID: 1, Name: "Dosa", MealType: "breakfast", Calories: kcal(300), LoggedAt: testNow.Add(-4 * time.Hour)},
		{UserID: 1, Name: "Thali", MealType: "lunch", Calories: kcal(600), LoggedAt: testNow},
		{UserID: 1, Name: "Late snack", MealType: "snack", Calories: kcal(900), LoggedAt: testNow.AddDate(0, 0, -1)},
		{UserID: 2, Name: "Other user", MealType: "lunch", Calories: kcal(900), LoggedAt: testNow},
	}
	for _, m := range meals {
		if err := store.CreateMeal(ctx, m); err != nil {
			t.Fatal(err)
		}
	}

	sum, err := svc.TodaySummary(ctx, &domain.User{ID: 1})
	if err != nil {
		t.Fatalf("today summary: %v", err)
	}
	if sum.TotalConsumed != 900 || sum.MealsLogged != 2 {
		t.Errorf("expected 900 kcal over 2 meals, got %d over %d", sum.TotalConsumed, sum.MealsLogged)
	}
	if sum.Remaining != 1100 || sum.Status != calorie.StatusOnTrack {
		t.Errorf("expected 1100 remaining on track, got %d %s", sum.Remaining, sum.Status)
	}
	if sum.MealBreakdown["lunch"] != 600 {
		t.Errorf("expected 600 kcal lunch, got %v", sum.MealBreakdown)
	}
}

func TestComputeStats(t *testing.T) {
	now := time.Date(2026, 3, 10, 20, 0, 0, 0, time.UTC)
	at := func(daysAgo, hour int) time.Time {
		return time.Date(2026, 3, 10-daysAgo, hour, 0, 0, 0, time.UTC)
	}

	tests := []struct {
		name  string
		times []time.Time
		want  Stats
	}{
		{
			name:  "no meals",
			times: nil,
			want:  Stats{Level: 1, XPToNextLevel: 100},
		},
		{
			name:  "two short runs",
			times: []time.Time{at(4, 9), at(3, 9), at(3, 19), at(1, 9), at(0, 9)},
			want: Stats{Level: 1, CurrentXP: 50, XPToNextLevel: 50, TotalXP: 50,
				CurrentStreak: 2, LongestStreak: 2, MealsLogged: 5, DaysActive: 4},
		},
		{
			name: "streak bonus",
			times: []time.Time{at(2, 8), at(2, 13), at(2, 20), at(1, 8), at(1, 13), at(1, 20),
				at(0, 8), at(0, 13), at(0, 18), at(0, 19)},
			want: Stats{Level: 2, CurrentXP: 50, XPToNextLevel: 50, TotalXP: 150,
				CurrentStreak: 3, LongestStreak: 3, MealsLogged: 10, DaysActive: 3},
		},
		{
			name:  "lapsed streak",
			times: []time.Time{at(9, 8), at(8, 8), at(7, 8), at(5, 8)},
			want: Stats{Level: 1, CurrentXP: 40, XPToNextLevel: 60, TotalXP: 40,
				CurrentStreak: 0, LongestStreak: 3, MealsLogged: 4, DaysActive: 4},
		},
		{
			name:  "yesterday keeps the streak",
			times: []time.Time{at(2, 8), at(1, 8)},
			want: Stats{Level: 1, CurrentXP: 20, XPToNextLevel: 80, TotalXP: 20,
				CurrentStreak: 2, LongestStreak: 2, MealsLogged: 2, DaysActive: 2},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := computeStats(tt.times, now, time.UTC); got != tt.want {
				t.Errorf("expected %+v, got %+v", tt.want, got)
			}
		})
	}
}

func TestComputeStatsUsesLocation(t *testing.T) {
	ist := time.FixedZone("IST", 5*3600+1800)
	// 20:00 UTC on the 9th is already the 10th in IST.
	times := []time.Time{
		time.Date(2026, 3, 9, 10, 0, 0, 0, time.UTC),
		time.Date(2026, 3, 9, 20, 0, 0, 0, time.UTC),
	}
	now := time.Date(2026, 3, 10, 6, 0, 0, 0, time.UTC)

	if got := computeStats(times, now, time.UTC); got.DaysActive != 1 {
		t.Errorf("expected 1 UTC day, got %d", got.DaysActive)
	}
	if got := computeStats(times, now, ist); got.DaysActive != 2 || got.CurrentStreak != 2 {
		t.Errorf("expected 2 IST days in a streak, got %+v", got)
	}
}

func TestStats(t *testing.T) {
	svc, store, _ := newTestService()
	ctx := context.Background()
	for _, ago := range []int{1, 0} {
		m := &domain.Meal{UserID: 1, Name: "Dal", LoggedAt: testNow.AddDate(0, 0, -ago)}
		if err := store.CreateMeal(ctx, m); err != nil {
			t.Fatal(err)
		}
	}

	st, err := svc.Stats(ctx, 1)
	if err != nil {
		t.Fatalf("stats: %v", err)
	}
	if st.MealsLogged != 2 || st.CurrentStreak != 2 || st.TotalXP != 20 {
		t.Errorf("unexpected stats %+v", st)
	}
}

func TestSplitAllergies(t *testing.T) {
	got := splitAllergies(" Peanut, dairy,, ,Shellfish ")
	want := []string{"peanut", "dairy", "shellfish"}
	if strings.Join(got, "|") != strings.Join(want, "|") {
		t.Errorf("expected %v, got %v", want, got)
	}
	if splitAllergies("") != nil {
		t.Error("expected nil for blank input")
	}
}

func TestRecommendThaliUsesProfileDefaults(t *testing.T) {
	svc, _, _ := newTestService()
	user := &domain.User{ID: 1, Profile: domain.Profile{DietaryPreference: "vegan", Allergies: "Dal, rice"}}

	rec := svc.RecommendThali(context.Background(), user, ThaliInput{MealType: "lunch"})
	if rec.CalorieGoal != 700 {
		t.Errorf("expected lunch share of the default target, got %d", rec.CalorieGoal)
	}
	if rec.Empty() {
		t.Fatal("expected a non-empty thali")
	}
	banned := []string{"dal", "rice", "paneer", "curd", "chicken", "egg", "fish", "butter", "milk"}
	for _, it := range rec.Items {
		name := strings.ToLower(it.Name)
		for _, b := range banned {
			if strings.Contains(name, b) {
				t.Errorf("item %q should have been filtered (%s)", it.Name, b)
			}
		}
	}
}

func TestRecommendThaliRequestOverridesProfile(t *testing.T) {
	svc, _, _ := newTestService()
	user := &domain.User{ID: 1, Profile: domain.Profile{DietaryPreference: "vegan"}}

	rec := svc.RecommendThali(context.Background(), user, ThaliInput{
		MealType: "dinner", CalorieGoal: 650, DietaryPreference: "non_vegetarian",
	})
	if rec.CalorieGoal != 650 {
		t.Errorf("expected explicit goal, got %d", rec.CalorieGoal)
	}
	if rec.MealType != "Dinner" {
		t.Errorf("expected Dinner, got %q", rec.MealType)
	}
}

func TestRecommendThaliGoalFromPlan(t *testing.T) {
	svc, _, _ := newTestService()
	user := &domain.User{ID: 1, Profile: completeProfile()}

	rec := svc.RecommendThali(context.Background(), user, ThaliInput{MealType: "breakfast"})
	want := calorie.MealTarget(2556, "breakfast", "maintain_weight")
	if rec.CalorieGoal != want {
		t.Errorf("expected %d kcal from the plan, got %d", want, rec.CalorieGoal)
	}
}

func TestRecommendMood(t *testing.T) {
	svc, _, _ := newTestService()
	ctx := context.Background()

	_, err := svc.RecommendMood(ctx, nil, MoodInput{Mood: "grumpy"})
	if !errors.Is(err, recommender.ErrInvalidMood) {
		t.Fatalf("expected ErrInvalidMood, got %v", err)
	}
	if code, _ := ErrorCode(err); code != "invalid_mood" {
		t.Errorf("expected invalid_mood code, got %s", code)
	}

	user := &domain.User{ID: 1, Profile: domain.Profile{Allergies: "masala"}}
	rec, err := svc.RecommendMood(ctx, user, MoodInput{Mood: " Happy "})
	if err != nil {
		t.Fatalf("recommend mood: %v", err)
	}
	if rec.Mood == nil || rec.Mood.Mood != "happy" {
		t.Errorf("expected happy summary, got %+v", rec.Mood)
	}
	for _, it := range rec.Items {
		if strings.Contains(strings.ToLower(it.Name), "masala") {
			t.Errorf("profile allergy ignored: %q", it.Name)
		}
	}
}

func TestRecommendDay(t *testing.T) {
	svc, _, _ := newTestService()

	plan := svc.RecommendDay(context.Background(), nil, DayInput{})
	if plan.DailyCalories != calorie.DefaultDailyTarget || plan.Metadata.TargetSource != "default" {
		t.Errorf("expected default target, got %d from %s", plan.DailyCalories, plan.Metadata.TargetSource)
	}

	wantSlots := []string{"breakfast", "lunch", "evening_snack", "dinner"}
	if len(plan.Meals) != len(wantSlots) {
		t.Fatalf("expected %d meals, got %d", len(wantSlots), len(plan.Meals))
	}
	var sum float64
	for i, m := range plan.Meals {
		if m.MealType != wantSlots[i] {
			t.Errorf("meal %d: expected %s, got %s", i, wantSlots[i], m.MealType)
		}
		if want := calorie.MealTarget(2000, m.MealType, ""); m.CalorieGoal != want {
			t.Errorf("%s: expected goal %d, got %d", m.MealType, want, m.CalorieGoal)
		}
		if m.Status != domain.SlotComposed {
			t.Errorf("%s: expected composed, got %s", m.MealType, m.Status)
		}
		sum += m.Recommendation.Totals.Calories
	}
	if plan.Summary.ComposedCount != 4 || plan.Summary.FailedCount != 0 {
		t.Errorf("unexpected summary %+v", plan.Summary)
	}
	if diff := plan.Totals.Calories - sum; diff > 0.5 || diff < -0.5 {
		t.Errorf("expected day totals %.1f, got %.1f", sum, plan.Totals.Calories)
	}
	if plan.Metadata.GeneratedAt != testNow.Format(time.RFC3339) {
		t.Errorf("unexpected generated_at %q", plan.Metadata.GeneratedAt)
	}
}

func TestRecommendDayTargetSource(t *testing.T) {
	svc, _, _ := newTestService()
	ctx := context.Background()

	plan := svc.RecommendDay(ctx, nil, DayInput{DailyCalories: 1800})
	if plan.DailyCalories != 1800 || plan.Metadata.TargetSource != "request" {
		t.Errorf("expected requested target, got %d from %s", plan.DailyCalories, plan.Metadata.TargetSource)
	}

	plan = svc.RecommendDay(ctx, &domain.User{ID: 1, Profile: completeProfile()}, DayInput{})
	if plan.DailyCalories != 2556 || plan.Metadata.TargetSource != "plan" {
		t.Errorf("expected planned target, got %d from %s", plan.DailyCalories, plan.Metadata.TargetSource)
	}
}

func TestRecommendDayPlanFailureFallsBack(t *testing.T) {
	svc, _, _ := newTestService()

	// A blank gender passes the profile check but not the calculator.
	profile := completeProfile()
	profile.Gender = "  "
	plan := svc.RecommendDay(context.Background(), &domain.User{ID: 1, Profile: profile}, DayInput{})
	if plan.DailyCalories != calorie.DefaultDailyTarget || plan.Metadata.TargetSource != "default" {
		t.Errorf("expected default target, got %d from %s", plan.DailyCalories, plan.Metadata.TargetSource)
	}
}

func TestRecommendDayCanceled(t *testing.T) {
	svc, _, _ := newTestService()
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	plan := svc.RecommendDay(ctx, nil, DayInput{})
	if plan.Summary.FailedCount != 4 {
		t.Fatalf("expected every slot to fail, got %+v", plan.Summary)
	}
	for _, m := range plan.Meals {
		if m.Error != "request_timeout" || m.Recommendation != nil {
			t.Errorf("%s: unexpected result %+v", m.MealType, m)
		}
	}
}

func TestErrorCode(t *testing.T) {
	tests := []struct {
		err  error
		want string
	}{
		{fmt.Errorf("compose: %w", recommender.ErrInvalidMood), "invalid_mood"},
		{calorie.ErrMissingParameter, "missing_parameter"},
		{domain.ErrProfileIncomplete, "profile_incomplete"},
		{domain.ErrEmailTaken, "email_taken"},
		{domain.ErrInvalidCredentials, "invalid_credentials"},
		{domain.ErrUnauthenticated, "unauthenticated"},
		{domain.ErrMealNotFound, "meal_not_found"},
		{domain.ErrForbidden, "forbidden"},
		{context.DeadlineExceeded, "request_timeout"},
		{errors.New("boom"), "internal_error"},
	}
	for _, tt := range tests {
		if got, _ := ErrorCode(tt.err); got != tt.want {
			t.Errorf("ErrorCode(%v) = %s, want %s", tt.err, got, tt.want)
		}
	}
}

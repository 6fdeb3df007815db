// Package seed fills a development database with plausible front-desk data:
// a handful of staff accounts, banned-guest records, open maintenance work,
// room issues, housekeeping stays and wake-up calls.
package seed

import (
	"log/slog"
	"math/rand"
	"time"

	"github.com/oakmont-hospitality/frontdesk/backend/internal/domain"
	"github.com/oakmont-hospitality/frontdesk/backend/internal/repository"
	"github.com/oakmont-hospitality/frontdesk/backend/internal/shifts"
	"github.com/oakmont-hospitality/frontdesk/backend/internal/utils"
)

func Seed(r *repository.Repository, clock *shifts.Clock, userPassword string) {
	seedUsers(r, userPassword)
	seedRecords(r, clock)
	seedMaintenance(r)
	seedRoomIssues(r)
	seedHousekeeping(r, clock)
	seedWakeupCalls(r, clock)
	seedSchedules(r, clock)

	slog.Info("seeding finished")
}

func seedUsers(r *repository.Repository, password string) {
	for i := 0; i < 8; i++ {
		user, err := utils.GenerateRandomUser(password, "oakmonthotel.test")
		if err != nil {
			slog.Error("generate user failed", "error", err)
			continue
		}
		if err := r.CreateUser(user); err != nil {
			slog.Error("insert user failed", "error", err)
			continue
		}
	}
}

func seedRecords(r *repository.Repository, clock *shifts.Clock) {
	today := clock.Now()

	for i := 0; i < 6; i++ {
		reasons := []string{domain.BanReasons[rand.Intn(len(domain.BanReasons))]}
		banType := domain.BanPermanent
		expType := domain.ExpirationType("")
		expDate := ""
		if rand.Intn(2) == 0 {
			banType = domain.BanTemporary
			expType = domain.ExpireByDate
			expDate = today.AddDate(0, rand.Intn(6)+1, 0).Format("2006-01-02")
		}

		rec := &domain.GuestRecord{
			GuestName:      utils.GenerateRandomFullName(),
			Status:         domain.RecordActive,
			BanType:        banType,
			Reasons:        reasons,
			DateAdded:      today.AddDate(0, 0, -rand.Intn(90)).Format("2006-01-02"),
			ExpirationType: expType,
			ExpirationDate: expDate,
		}
		if err := r.CreateRecord(rec, utils.GenerateRandomInitials()); err != nil {
			slog.Error("insert record failed", "error", err)
		}
	}
}

var maintenanceTitles = []string{
	"Lobby AC unit rattling",
	"Pool pump pressure low",
	"Elevator button panel sticking",
	"Parking lot light out",
	"Ice machine on floor 2 leaking",
	"Laundry dryer #3 not heating",
}

func seedMaintenance(r *repository.Repository) {
	priorities := []domain.MaintenancePriority{
		domain.PriorityLow, domain.PriorityMedium, domain.PriorityHigh, domain.PriorityUrgent,
	}

	for _, title := range maintenanceTitles {
		item := &domain.MaintenanceItem{
			Title:    title,
			Priority: priorities[rand.Intn(len(priorities))],
			Status:   domain.MaintenanceOpen,
		}
		if err := r.CreateMaintenanceItem(item); err != nil {
			slog.Error("insert maintenance item failed", "error", err)
		}
	}
}

func seedRoomIssues(r *repository.Repository) {
	types := []domain.RoomIssueType{
		domain.IssueHotWater, domain.IssueHVAC, domain.IssuePlumbing, domain.IssueOther,
	}

	for i := 0; i < 4; i++ {
		status := domain.RoomUseIfNeeded
		if rand.Intn(2) == 0 {
			status = domain.RoomOutOfOrder
		}
		issue := &domain.RoomIssue{
			RoomNumber: utils.GenerateRandomRoomNumber(),
			IssueType:  types[rand.Intn(len(types))],
			Status:     status,
			State:      domain.IssueActive,
		}
		if err := r.CreateRoomIssue(issue); err != nil {
			slog.Error("insert room issue failed", "error", err)
		}
	}
}

func seedHousekeeping(r *repository.Repository, clock *shifts.Clock) {
	today := clock.Now()
	frequencies := []domain.HousekeepingFrequency{
		domain.FrequencyDaily, domain.FrequencyEvery3rd, domain.FrequencyNone,
	}

	for i := 0; i < 5; i++ {
		start := today.AddDate(0, 0, -rand.Intn(3))
		req := &domain.HousekeepingRequest{
			RoomNumber: utils.GenerateRandomRoomNumber(),
			GuestName:  utils.GenerateRandomFullName(),
			StartDate:  start.Format("2006-01-02"),
			EndDate:    start.AddDate(0, 0, rand.Intn(10)+2).Format("2006-01-02"),
			Frequency:  frequencies[rand.Intn(len(frequencies))],
		}
		if err := r.CreateHousekeepingRequest(req); err != nil {
			slog.Error("insert housekeeping request failed", "error", err)
		}
	}
}

func seedWakeupCalls(r *repository.Repository, clock *shifts.Clock) {
	tomorrow := clock.Now().AddDate(0, 0, 1)

	for i := 0; i < 3; i++ {
		call := &domain.WakeupCall{
			RoomNumber: utils.GenerateRandomRoomNumber(),
			CallDate:   tomorrow.Format("2006-01-02"),
			CallTime:   time.Date(0, 1, 1, 5+rand.Intn(4), 15*rand.Intn(4), 0, 0, time.UTC).Format("15:04"),
			Status:     domain.WakeupPending,
		}
		if err := r.CreateWakeupCall(call); err != nil {
			slog.Error("insert wake-up call failed", "error", err)
		}
	}
}

var seedShiftTimes = []string{"7am-3pm", "3pm-11pm", "11pm-7am", "8:45am-12:45pm", "ON"}

var seedDepartments = []string{"FRONT DESK", "HOUSEKEEPING", "MAINTENANCE"}

func seedSchedules(r *repository.Repository, clock *shifts.Clock) {
	now := clock.Now()
	monday := now.AddDate(0, 0, -((int(now.Weekday()) + 6) % 7))

	for i := 0; i < 5; i++ {
		name := utils.GenerateRandomFullName()
		dept := seedDepartments[rand.Intn(len(seedDepartments))]
		for day := 0; day < 7; day++ {
			if rand.Intn(3) == 0 {
				continue // day off
			}
			entry := &domain.ScheduleEntry{
				StaffName:  name,
				ShiftDate:  monday.AddDate(0, 0, day).Format("2006-01-02"),
				ShiftTime:  seedShiftTimes[rand.Intn(len(seedShiftTimes))],
				Department: dept,
			}
			if err := r.CreateScheduleEntry(entry); err != nil {
				slog.Error("insert schedule entry failed", "error", err)
			}
		}
	}
}

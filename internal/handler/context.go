package handler

type ContextKey string

var (
	RoleCtxKey          ContextKey = "role"
	SubCtxKey           ContextKey = "sub"
	MyInfoCtx           ContextKey = "myInfo"
	UserInfoCtx         ContextKey = "userInfo"
	GuestRecordCtx      ContextKey = "guestRecord"
	MaintenanceItemCtx  ContextKey = "maintenanceItem"
	RoomIssueCtx        ContextKey = "roomIssue"
	HousekeepingCtx     ContextKey = "housekeepingRequest"
	WakeupCallCtx       ContextKey = "wakeupCall"
	ScheduleEntryCtx    ContextKey = "scheduleEntry"
	ScheduleUploadCtx   ContextKey = "scheduleUpload"
)

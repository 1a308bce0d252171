package model

type DashboardSummary struct {
	MemberStats         MemberStats `json:"memberStats"`
	AnnouncementCount   int         `json:"announcementCount"`
	RecentGreetingCount int         `json:"recentGreetingCount"`
	TodaysBirthdayCount int         `json:"todaysBirthdayCount"`
}

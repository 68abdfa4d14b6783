package dto

// View model untuk layar kiosk. Dihitung ulang tiap request — kiosk polling
// tiap 30 detik, tidak ada state tersimpan di server.

// TimelineItem: satu baris di daftar "jadwal hari ini". Baris break time
// disisipkan sebagai item sintetis (IsBreak=true, Teacher="Waktu Istirahat")
// dan ikut terurut by StartTime — presentation tinggal render apa adanya.
type TimelineItem struct {
	ID         string  `json:"id"` // "break_<id>" untuk baris istirahat
	Subject    string  `json:"subject"`
	Teacher    string  `json:"teacher"`
	StartTime  string  `json:"start_time"` // "HH:MM"
	EndTime    string  `json:"end_time"`
	IsCurrent  bool    `json:"is_current"`
	Kelas      string  `json:"kelas"`
	GuruAvatar *string `json:"guru_avatar,omitempty"`
	IsBreak    bool    `json:"is_break"`
}

// Identity: siapa yang ditampilkan kiosk — guru jadwal berjalan atau
// PIC default ruangan.
type Identity struct {
	ID     string  `json:"id"`
	Name   string  `json:"name"`
	Email  string  `json:"email"`
	NoHP   *string `json:"no_hp,omitempty"`
	Avatar *string `json:"avatar,omitempty"` // URL display, sudah diresolve
}

type CurrentSchedule struct {
	Subject   string `json:"subject"`
	Kelas     string `json:"kelas"`
	StartTime string `json:"start_time"`
	EndTime   string `json:"end_time"`
}

type NextSchedule struct {
	Subject     string `json:"subject"`
	TeacherName string `json:"teacher_name"`
	StartTime   string `json:"start_time"`
}

type CurrentBreak struct {
	Nama      string `json:"nama"`
	StartTime string `json:"start_time"`
	EndTime   string `json:"end_time"`
}

type VideoItem struct {
	ID           string  `json:"id"`
	Judul        string  `json:"judul"`
	Deskripsi    *string `json:"deskripsi,omitempty"`
	FileURL      string  `json:"file_url"`
	ThumbnailURL *string `json:"thumbnail_url,omitempty"`
	Durasi       *int    `json:"durasi,omitempty"`
}

// ResolvedView: hasil resolusi untuk satu (ruangan, hari, jam).
// Current dan CurrentBreak dihitung independen — keduanya bisa terisi
// bersamaan; presentation memprioritaskan break secara visual.
// DisplayIdentity tetap terisi PIC default di bawah overlay break.
type ResolvedView struct {
	Current         *CurrentSchedule `json:"current"`
	Next            *NextSchedule    `json:"next"`
	CurrentBreak    *CurrentBreak    `json:"current_break"`
	IsBreakTime     bool             `json:"is_break_time"`
	DisplayIdentity *Identity        `json:"display_identity"`
	TodaySchedules  []TimelineItem   `json:"today_schedules"`
	Videos          []VideoItem      `json:"videos"`
	CurrentDay      string           `json:"current_day"`
	CurrentTime     string           `json:"current_time"` // "HH:MM:SS"
}

// RuanganOption: isi dropdown pemilih ruangan di kiosk.
type RuanganOption struct {
	ID         string  `json:"id"`
	Nama       string  `json:"nama"`
	Keterangan *string `json:"keterangan,omitempty"`
}

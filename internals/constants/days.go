package constants

import "time"

// Nama hari penuh (locale id), mengikuti isoFormat('dddd') Carbon.
const (
	HariSenin  = "Senin"
	HariSelasa = "Selasa"
	HariRabu   = "Rabu"
	HariKamis  = "Kamis"
	HariJumat  = "Jumat"
	HariSabtu  = "Sabtu"
	HariMinggu = "Minggu"
)

// HariSekolah: enum 6 hari untuk jadwal pelajaran (tidak ada kelas hari Minggu).
var HariSekolah = []string{HariSenin, HariSelasa, HariRabu, HariKamis, HariJumat, HariSabtu}

// HariSemua: 7 hari — break time boleh menunjuk hari apa pun termasuk Minggu.
var HariSemua = []string{HariSenin, HariSelasa, HariRabu, HariKamis, HariJumat, HariSabtu, HariMinggu}

var namaHari = map[time.Weekday]string{
	time.Monday:    HariSenin,
	time.Tuesday:   HariSelasa,
	time.Wednesday: HariRabu,
	time.Thursday:  HariKamis,
	time.Friday:    HariJumat,
	time.Saturday:  HariSabtu,
	time.Sunday:    HariMinggu,
}

// WeekdayName mengubah time.Weekday ke nama hari Indonesia.
func WeekdayName(w time.Weekday) string { return namaHari[w] }

func IsHariSekolah(h string) bool {
	for _, v := range HariSekolah {
		if v == h {
			return true
		}
	}
	return false
}

func IsHariValid(h string) bool {
	for _, v := range HariSemua {
		if v == h {
			return true
		}
	}
	return false
}

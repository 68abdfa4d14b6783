package service

import (
	"context"
	"sort"

	"github.com/google/uuid"
	"gorm.io/gorm"

	btModel "github.com/sltnnt08/ilab-v2/internals/features/lab/breaktime/model"
	"github.com/sltnnt08/ilab-v2/internals/features/lab/display/dto"
	guruModel "github.com/sltnnt08/ilab-v2/internals/features/lab/guru/model"
	jadwalModel "github.com/sltnnt08/ilab-v2/internals/features/lab/jadwal/model"
	ruanganModel "github.com/sltnnt08/ilab-v2/internals/features/lab/ruangan/model"
	videoModel "github.com/sltnnt08/ilab-v2/internals/features/lab/video/model"
	"github.com/sltnnt08/ilab-v2/internals/helpers/dbtime"
	storage "github.com/sltnnt08/ilab-v2/internals/helpers/storage"
)

// Label baris istirahat di kolom "guru" pada timeline.
const BreakTeacherLabel = "Waktu Istirahat"

/* =========================
   Repository interfaces
   ========================= */

type JadwalReader interface {
	// Terurut jam_mulai asc, lalu created_at asc (stabil untuk data anomali).
	ListByRuanganHari(ctx context.Context, ruanganID uuid.UUID, hari string) ([]jadwalModel.JadwalModel, error)
}

type BreakTimeReader interface {
	// Hanya yang is_active, terurut urutan asc, jam_mulai asc, created_at asc.
	ListActive(ctx context.Context) ([]btModel.BreakTimeModel, error)
}

type VideoReader interface {
	// Hanya yang is_active, terurut urutan asc, created_at desc.
	ListActive(ctx context.Context) ([]videoModel.VideoModel, error)
}

/* =========================
   Engine
   ========================= */

// Engine menghitung view kiosk untuk satu (ruangan, hari, jam).
// Murni terhadap inputnya: dua panggilan dengan store & instant sama
// menghasilkan view identik. Error repository diteruskan apa adanya —
// kiosk retry sendiri di poll berikutnya.
type Engine struct {
	Jadwal JadwalReader
	Break  BreakTimeReader
	Video  VideoReader

	// object key → URL display; diinject supaya bisa dites tanpa MinIO
	MediaURL func(key string) string
}

func NewEngine(db *gorm.DB) *Engine {
	return &Engine{
		Jadwal:   &jadwalRepo{db: db},
		Break:    &breakTimeRepo{db: db},
		Video:    &videoRepo{db: db},
		MediaURL: storage.PublicURL,
	}
}

// aktifPada: konvensi batas satu arah — mulai inklusif, selesai eksklusif
// (jam_mulai <= t < jam_selesai). Detik 08:30:00 milik slot yang MULAI
// 08:30, bukan yang selesai 08:30.
func aktifPada(mulai, selesai, t dbtime.Tod) bool {
	return !t.Before(mulai.Time) && t.Before(selesai.Time)
}

// Resolve hitung ResolvedView. ruangan boleh nil (belum ada ruangan sama
// sekali) → view kosong, bukan error; layar kiosk tidak boleh blank.
func (e *Engine) Resolve(ctx context.Context, ruangan *ruanganModel.RuanganModel, tc TimeContext) (*dto.ResolvedView, error) {
	view := &dto.ResolvedView{
		CurrentDay:     tc.Hari,
		CurrentTime:    tc.Jam.String(),
		TodaySchedules: []dto.TimelineItem{},
		Videos:         []dto.VideoItem{},
	}
	if ruangan == nil {
		return view, nil
	}

	jadwals, err := e.Jadwal.ListByRuanganHari(ctx, ruangan.RuanganID, tc.Hari)
	if err != nil {
		return nil, err
	}
	allBreaks, err := e.Break.ListActive(ctx)
	if err != nil {
		return nil, err
	}

	// filter break ke hari ini (nil/kosong = tiap hari)
	breaks := make([]btModel.BreakTimeModel, 0, len(allBreaks))
	for _, b := range allBreaks {
		if b.BerlakuHari(tc.Hari) {
			breaks = append(breaks, b)
		}
	}

	// jadwal berjalan: list sudah asc jam_mulai → match pertama = jam_mulai
	// terkecil. Kalau store ternyata berisi overlap (data import), ini yang
	// bikin jawabannya tetap deterministik.
	var cur *jadwalModel.JadwalModel
	for i := range jadwals {
		if aktifPada(jadwals[i].JadwalJamMulai, jadwals[i].JadwalJamSelesai, tc.Jam) {
			cur = &jadwals[i]
			break
		}
	}

	// break berjalan: urutan terkecil menang, seri → jam_mulai paling awal,
	// lalu urutan input. Dihitung terlepas dari jadwal kelas.
	curBreak := pilihBreakAktif(breaks, tc.Jam)
	view.IsBreakTime = curBreak != nil
	if curBreak != nil {
		view.CurrentBreak = &dto.CurrentBreak{
			Nama:      curBreak.BreakTimeNama,
			StartTime: curBreak.BreakTimeJamMulai.HHMM(),
			EndTime:   curBreak.BreakTimeJamSelesai.HHMM(),
		}
	}

	if cur != nil {
		view.Current = &dto.CurrentSchedule{
			Subject:   namaMapel(cur),
			Kelas:     namaKelas(cur),
			StartTime: cur.JadwalJamMulai.HHMM(),
			EndTime:   cur.JadwalJamSelesai.HHMM(),
		}
	}

	// jadwal selanjutnya: jam_mulai paling awal yang > jam sekarang.
	// Break time sengaja tidak dihitung — pertanyaannya "kelas apa berikutnya".
	for i := range jadwals {
		if jadwals[i].JadwalJamMulai.After(tc.Jam.Time) {
			view.Next = &dto.NextSchedule{
				Subject:     namaMapel(&jadwals[i]),
				TeacherName: namaGuru(&jadwals[i]),
				StartTime:   jadwals[i].JadwalJamMulai.HHMM(),
			}
			break
		}
	}

	// identitas display: guru jadwal berjalan → PIC default ruangan → nil.
	// Saat break aktif tanpa kelas, PIC tetap diisi; presentation yang
	// memilih menampilkan overlay break di atasnya.
	if cur != nil && cur.Guru != nil {
		view.DisplayIdentity = e.identityFromGuru(cur.Guru)
	} else {
		view.DisplayIdentity = e.DefaultIdentity(ruangan)
	}

	view.TodaySchedules = e.buildTimeline(jadwals, breaks, tc.Jam)

	// video hanya dimuat saat istirahat aktif
	if view.IsBreakTime && e.Video != nil {
		videos, err := e.Video.ListActive(ctx)
		if err != nil {
			return nil, err
		}
		for _, v := range videos {
			item := dto.VideoItem{
				ID:        v.VideoID.String(),
				Judul:     v.VideoJudul,
				Deskripsi: v.VideoDeskripsi,
				FileURL:   e.MediaURL(v.VideoFileKey),
				Durasi:    v.VideoDurasi,
			}
			if v.VideoThumbnailKey != nil {
				u := e.MediaURL(*v.VideoThumbnailKey)
				item.ThumbnailURL = &u
			}
			view.Videos = append(view.Videos, item)
		}
	}

	return view, nil
}

// pilihBreakAktif: kandidat in-range dengan (urutan, jam_mulai, urutan input)
// terkecil. Input tidak diasumsikan sudah terurut.
func pilihBreakAktif(breaks []btModel.BreakTimeModel, jam dbtime.Tod) *btModel.BreakTimeModel {
	var best *btModel.BreakTimeModel
	for i := range breaks {
		b := &breaks[i]
		if !aktifPada(b.BreakTimeJamMulai, b.BreakTimeJamSelesai, jam) {
			continue
		}
		if best == nil {
			best = b
			continue
		}
		if b.BreakTimeUrutan < best.BreakTimeUrutan ||
			(b.BreakTimeUrutan == best.BreakTimeUrutan && b.BreakTimeJamMulai.Before(best.BreakTimeJamMulai.Time)) {
			best = b
		}
	}
	return best
}

// buildTimeline gabungkan jadwal kelas + baris break sintetis, terurut
// jam_mulai (stable: jadwal dulu baru break saat jam sama).
func (e *Engine) buildTimeline(jadwals []jadwalModel.JadwalModel, breaks []btModel.BreakTimeModel, jam dbtime.Tod) []dto.TimelineItem {
	type row struct {
		item  dto.TimelineItem
		mulai dbtime.Tod
	}
	rows := make([]row, 0, len(jadwals)+len(breaks))

	for i := range jadwals {
		j := &jadwals[i]
		item := dto.TimelineItem{
			ID:        j.JadwalID.String(),
			Subject:   namaMapel(j),
			Teacher:   namaGuru(j),
			StartTime: j.JadwalJamMulai.HHMM(),
			EndTime:   j.JadwalJamSelesai.HHMM(),
			IsCurrent: aktifPada(j.JadwalJamMulai, j.JadwalJamSelesai, jam),
			Kelas:     namaKelas(j),
			IsBreak:   false,
		}
		if j.Guru != nil {
			item.GuruAvatar = e.avatarURL(j.Guru.GuruAvatarKind, j.Guru.GuruAvatarRef)
		}
		rows = append(rows, row{item: item, mulai: j.JadwalJamMulai})
	}

	for i := range breaks {
		b := &breaks[i]
		rows = append(rows, row{
			item: dto.TimelineItem{
				ID:        "break_" + b.BreakTimeID.String(),
				Subject:   b.BreakTimeNama,
				Teacher:   BreakTeacherLabel,
				StartTime: b.BreakTimeJamMulai.HHMM(),
				EndTime:   b.BreakTimeJamSelesai.HHMM(),
				IsCurrent: aktifPada(b.BreakTimeJamMulai, b.BreakTimeJamSelesai, jam),
				Kelas:     "-",
				IsBreak:   true,
			},
			mulai: b.BreakTimeJamMulai,
		})
	}

	sort.SliceStable(rows, func(i, k int) bool {
		return rows[i].mulai.Before(rows[k].mulai.Time)
	})

	items := make([]dto.TimelineItem, len(rows))
	for i := range rows {
		items[i] = rows[i].item
	}
	return items
}

/* =========================
   Identity resolver
   ========================= */

// DefaultIdentity: PIC default ruangan, atau nil kalau tidak dikonfigurasi.
// Lookup murni, hanya null-propagation.
func (e *Engine) DefaultIdentity(ruangan *ruanganModel.RuanganModel) *dto.Identity {
	if ruangan == nil || ruangan.DefaultPic == nil {
		return nil
	}
	return e.identityFromGuru(ruangan.DefaultPic)
}

func (e *Engine) identityFromGuru(g *guruModel.GuruModel) *dto.Identity {
	if g == nil {
		return nil
	}
	return &dto.Identity{
		ID:     g.GuruID.String(),
		Name:   g.GuruName,
		Email:  g.GuruEmail,
		NoHP:   g.GuruNoHP,
		Avatar: e.avatarURL(g.GuruAvatarKind, g.GuruAvatarRef),
	}
}

// avatarURL: pasangan (kind, ref) → URL display. upload = object key MinIO,
// link = URL dipakai langsung.
func (e *Engine) avatarURL(kind *guruModel.AvatarKind, ref *string) *string {
	if kind == nil || ref == nil {
		return nil
	}
	switch *kind {
	case guruModel.AvatarLink:
		return ref
	case guruModel.AvatarUpload:
		u := e.MediaURL(*ref)
		return &u
	}
	return nil
}

/* =========================
   Helpers nama relasi
   ========================= */

func namaMapel(j *jadwalModel.JadwalModel) string {
	if j.Mapel != nil {
		return j.Mapel.MapelNama
	}
	return ""
}

func namaGuru(j *jadwalModel.JadwalModel) string {
	if j.Guru != nil {
		return j.Guru.GuruName
	}
	return ""
}

func namaKelas(j *jadwalModel.JadwalModel) string {
	if j.Kelas != nil {
		return j.Kelas.KelasNama
	}
	return ""
}

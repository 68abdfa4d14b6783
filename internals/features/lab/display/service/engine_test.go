package service

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/datatypes"

	btModel "github.com/sltnnt08/ilab-v2/internals/features/lab/breaktime/model"
	"github.com/sltnnt08/ilab-v2/internals/features/lab/display/dto"
	guruModel "github.com/sltnnt08/ilab-v2/internals/features/lab/guru/model"
	jadwalModel "github.com/sltnnt08/ilab-v2/internals/features/lab/jadwal/model"
	kelasModel "github.com/sltnnt08/ilab-v2/internals/features/lab/kelas/model"
	mapelModel "github.com/sltnnt08/ilab-v2/internals/features/lab/mapel/model"
	ruanganModel "github.com/sltnnt08/ilab-v2/internals/features/lab/ruangan/model"
	videoModel "github.com/sltnnt08/ilab-v2/internals/features/lab/video/model"
	"github.com/sltnnt08/ilab-v2/internals/helpers/dbtime"
)

/* =========================
   Fake readers
   ========================= */

type fakeJadwalReader struct {
	rows []jadwalModel.JadwalModel
	err  error
}

func (f *fakeJadwalReader) ListByRuanganHari(_ context.Context, _ uuid.UUID, _ string) ([]jadwalModel.JadwalModel, error) {
	return f.rows, f.err
}

type fakeBreakReader struct {
	rows []btModel.BreakTimeModel
	err  error
}

func (f *fakeBreakReader) ListActive(_ context.Context) ([]btModel.BreakTimeModel, error) {
	return f.rows, f.err
}

type fakeVideoReader struct {
	rows  []videoModel.VideoModel
	err   error
	calls int
}

func (f *fakeVideoReader) ListActive(_ context.Context) ([]videoModel.VideoModel, error) {
	f.calls++
	return f.rows, f.err
}

/* =========================
   Builders
   ========================= */

func tod(s string) dbtime.Tod { return dbtime.MustParse(s) }

func mkGuru(name string) *guruModel.GuruModel {
	return &guruModel.GuruModel{
		GuruID:    uuid.New(),
		GuruName:  name,
		GuruEmail: name + "@sekolah.sch.id",
	}
}

func mkJadwal(mulai, selesai, guru, mapel, kelas string) jadwalModel.JadwalModel {
	return jadwalModel.JadwalModel{
		JadwalID:         uuid.New(),
		JadwalHari:       "Senin",
		JadwalJamMulai:   tod(mulai),
		JadwalJamSelesai: tod(selesai),
		Guru:             mkGuru(guru),
		Mapel:            &mapelModel.MapelModel{MapelID: uuid.New(), MapelNama: mapel},
		Kelas:            &kelasModel.KelasModel{KelasID: uuid.New(), KelasNama: kelas},
	}
}

func mkBreak(nama, mulai, selesai string, hari []string, urutan int) btModel.BreakTimeModel {
	b := btModel.BreakTimeModel{
		BreakTimeID:         uuid.New(),
		BreakTimeNama:       nama,
		BreakTimeJamMulai:   tod(mulai),
		BreakTimeJamSelesai: tod(selesai),
		BreakTimeIsActive:   true,
		BreakTimeUrutan:     urutan,
	}
	if hari != nil {
		b.BreakTimeHari = datatypes.JSONSlice[string](hari)
	}
	return b
}

func mkRuangan(pic *guruModel.GuruModel) *ruanganModel.RuanganModel {
	r := &ruanganModel.RuanganModel{
		RuanganID:   uuid.New(),
		RuanganNama: "Lab Komputer 1",
	}
	if pic != nil {
		r.RuanganDefaultPicID = &pic.GuruID
		r.DefaultPic = pic
	}
	return r
}

func mkEngine(j *fakeJadwalReader, b *fakeBreakReader, v *fakeVideoReader) *Engine {
	return &Engine{
		Jadwal:   j,
		Break:    b,
		Video:    v,
		MediaURL: func(key string) string { return "https://media.test/" + key },
	}
}

func resolveAt(t *testing.T, e *Engine, r *ruanganModel.RuanganModel, hari, jam string) *dto.ResolvedView {
	t.Helper()
	view, err := e.Resolve(context.Background(), r, TimeContext{Hari: hari, Jam: tod(jam)})
	require.NoError(t, err)
	require.NotNil(t, view)
	return view
}

/* =========================
   Tests
   ========================= */

func seninPagi() *fakeJadwalReader {
	return &fakeJadwalReader{rows: []jadwalModel.JadwalModel{
		mkJadwal("07:00", "08:30", "Bu Sari", "Matematika", "X-1"),
		mkJadwal("08:30", "10:00", "Pak Budi", "Bahasa Indonesia", "X-1"),
	}}
}

func TestResolveCurrentDanNext(t *testing.T) {
	e := mkEngine(seninPagi(), &fakeBreakReader{}, &fakeVideoReader{})
	ruangan := mkRuangan(nil)

	t.Run("di tengah slot pertama", func(t *testing.T) {
		v := resolveAt(t, e, ruangan, "Senin", "08:00:00")
		require.NotNil(t, v.Current)
		assert.Equal(t, "Matematika", v.Current.Subject)
		require.NotNil(t, v.Next)
		assert.Equal(t, "Bahasa Indonesia", v.Next.Subject)
		assert.Equal(t, "08:30", v.Next.StartTime)
		require.NotNil(t, v.DisplayIdentity)
		assert.Equal(t, "Bu Sari", v.DisplayIdentity.Name)
	})

	t.Run("tepat di batas back-to-back: slot yang mulai menang", func(t *testing.T) {
		// 08:30:00 milik Bahasa Indonesia (mulai inklusif, selesai eksklusif)
		v := resolveAt(t, e, ruangan, "Senin", "08:30:00")
		require.NotNil(t, v.Current)
		assert.Equal(t, "Bahasa Indonesia", v.Current.Subject)
		assert.Nil(t, v.Next, "tidak ada kelas lagi setelah 08:30")
	})

	t.Run("tepat jam mulai pertama", func(t *testing.T) {
		v := resolveAt(t, e, ruangan, "Senin", "07:00:00")
		require.NotNil(t, v.Current)
		assert.Equal(t, "Matematika", v.Current.Subject)
	})

	t.Run("tepat jam selesai terakhir: bukan current", func(t *testing.T) {
		v := resolveAt(t, e, ruangan, "Senin", "10:00:00")
		assert.Nil(t, v.Current)
		assert.Nil(t, v.Next)
	})

	t.Run("sebelum kelas pertama: hanya next", func(t *testing.T) {
		v := resolveAt(t, e, ruangan, "Senin", "06:00:00")
		assert.Nil(t, v.Current)
		require.NotNil(t, v.Next)
		assert.Equal(t, "Matematika", v.Next.Subject)
	})
}

func TestResolveDataOverlapTetapDeterministik(t *testing.T) {
	// store berisi overlap (mis. data import) — bukan crash, jam_mulai
	// paling awal yang menang
	j := &fakeJadwalReader{rows: []jadwalModel.JadwalModel{
		mkJadwal("07:00", "09:00", "Bu Sari", "Matematika", "X-1"),
		mkJadwal("08:00", "10:00", "Pak Budi", "Fisika", "X-1"),
	}}
	e := mkEngine(j, &fakeBreakReader{}, &fakeVideoReader{})

	v := resolveAt(t, e, mkRuangan(nil), "Senin", "08:30:00")
	require.NotNil(t, v.Current)
	assert.Equal(t, "Matematika", v.Current.Subject, "earliest-starting menang")
}

func TestResolveBreakFilterHari(t *testing.T) {
	b := &fakeBreakReader{rows: []btModel.BreakTimeModel{
		mkBreak("Istirahat Jumat (Khusus)", "11:30", "13:00", []string{"Jumat"}, 0),
		mkBreak("Istirahat Siang", "12:00", "13:00", nil, 2),
	}}
	e := mkEngine(&fakeJadwalReader{}, b, &fakeVideoReader{})
	ruangan := mkRuangan(nil)

	t.Run("hari lain: window khusus Jumat tidak match", func(t *testing.T) {
		v := resolveAt(t, e, ruangan, "Senin", "12:15:00")
		require.True(t, v.IsBreakTime)
		assert.Equal(t, "Istirahat Siang", v.CurrentBreak.Nama, "hanya window semua-hari yang berlaku")
	})

	t.Run("Jumat: urutan terendah menang", func(t *testing.T) {
		v := resolveAt(t, e, ruangan, "Jumat", "12:15:00")
		require.True(t, v.IsBreakTime)
		assert.Equal(t, "Istirahat Jumat (Khusus)", v.CurrentBreak.Nama)
	})

	t.Run("di luar jam istirahat", func(t *testing.T) {
		v := resolveAt(t, e, ruangan, "Jumat", "10:00:00")
		assert.False(t, v.IsBreakTime)
		assert.Nil(t, v.CurrentBreak)
	})
}

func TestResolveBreakSeriUrutan(t *testing.T) {
	// urutan sama → jam_mulai paling awal menang
	b := &fakeBreakReader{rows: []btModel.BreakTimeModel{
		mkBreak("B", "12:00", "13:00", nil, 1),
		mkBreak("A", "11:45", "13:00", nil, 1),
	}}
	e := mkEngine(&fakeJadwalReader{}, b, &fakeVideoReader{})

	v := resolveAt(t, e, mkRuangan(nil), "Senin", "12:30:00")
	require.True(t, v.IsBreakTime)
	assert.Equal(t, "A", v.CurrentBreak.Nama)
}

func TestResolveBreakBatasEksklusif(t *testing.T) {
	b := &fakeBreakReader{rows: []btModel.BreakTimeModel{
		mkBreak("Istirahat Pagi", "10:00", "10:15", nil, 1),
	}}
	e := mkEngine(&fakeJadwalReader{}, b, &fakeVideoReader{})
	ruangan := mkRuangan(nil)

	assert.True(t, resolveAt(t, e, ruangan, "Senin", "10:00:00").IsBreakTime)
	assert.True(t, resolveAt(t, e, ruangan, "Senin", "10:14:59").IsBreakTime)
	assert.False(t, resolveAt(t, e, ruangan, "Senin", "10:15:00").IsBreakTime)
}

func TestResolveNextTidakLihatBreak(t *testing.T) {
	// break 10:00 lebih awal dari kelas 10:30 — next tetap kelas
	j := &fakeJadwalReader{rows: []jadwalModel.JadwalModel{
		mkJadwal("07:00", "08:30", "Bu Sari", "Matematika", "X-1"),
		mkJadwal("10:30", "12:00", "Pak Budi", "Kimia", "X-1"),
	}}
	b := &fakeBreakReader{rows: []btModel.BreakTimeModel{
		mkBreak("Istirahat Pagi", "10:00", "10:15", nil, 1),
	}}
	e := mkEngine(j, b, &fakeVideoReader{})

	v := resolveAt(t, e, mkRuangan(nil), "Senin", "09:00:00")
	require.NotNil(t, v.Next)
	assert.Equal(t, "Kimia", v.Next.Subject)
	assert.Equal(t, "10:30", v.Next.StartTime)
}

func TestResolveIdentityFallback(t *testing.T) {
	t.Run("tanpa jadwal aktif, ada PIC default", func(t *testing.T) {
		pic := mkGuru("Pak Joko")
		e := mkEngine(&fakeJadwalReader{}, &fakeBreakReader{}, &fakeVideoReader{})
		v := resolveAt(t, e, mkRuangan(pic), "Senin", "09:00:00")
		require.NotNil(t, v.DisplayIdentity)
		assert.Equal(t, "Pak Joko", v.DisplayIdentity.Name)
	})

	t.Run("tanpa jadwal aktif, tanpa PIC", func(t *testing.T) {
		e := mkEngine(&fakeJadwalReader{}, &fakeBreakReader{}, &fakeVideoReader{})
		v := resolveAt(t, e, mkRuangan(nil), "Senin", "09:00:00")
		assert.Nil(t, v.DisplayIdentity)
	})

	t.Run("break aktif tanpa kelas: PIC tetap terisi di bawah overlay", func(t *testing.T) {
		pic := mkGuru("Pak Joko")
		b := &fakeBreakReader{rows: []btModel.BreakTimeModel{
			mkBreak("Istirahat Siang", "12:00", "13:00", nil, 1),
		}}
		e := mkEngine(&fakeJadwalReader{}, b, &fakeVideoReader{})
		v := resolveAt(t, e, mkRuangan(pic), "Senin", "12:30:00")
		assert.True(t, v.IsBreakTime)
		require.NotNil(t, v.DisplayIdentity)
		assert.Equal(t, "Pak Joko", v.DisplayIdentity.Name)
	})

	t.Run("kelas aktif menang atas PIC", func(t *testing.T) {
		pic := mkGuru("Pak Joko")
		e := mkEngine(seninPagi(), &fakeBreakReader{}, &fakeVideoReader{})
		v := resolveAt(t, e, mkRuangan(pic), "Senin", "07:30:00")
		require.NotNil(t, v.DisplayIdentity)
		assert.Equal(t, "Bu Sari", v.DisplayIdentity.Name)
	})
}

func TestResolveTimelineGabungan(t *testing.T) {
	j := &fakeJadwalReader{rows: []jadwalModel.JadwalModel{
		mkJadwal("07:00", "08:30", "Bu Sari", "Matematika", "X-1"),
		mkJadwal("10:15", "12:00", "Pak Budi", "Kimia", "X-1"),
	}}
	b := &fakeBreakReader{rows: []btModel.BreakTimeModel{
		mkBreak("Istirahat Pagi", "10:00", "10:15", nil, 1),
	}}
	e := mkEngine(j, b, &fakeVideoReader{})

	v := resolveAt(t, e, mkRuangan(nil), "Senin", "10:05:00")
	require.Len(t, v.TodaySchedules, 3)

	// terurut jam mulai, baris break di tengah
	assert.Equal(t, "Matematika", v.TodaySchedules[0].Subject)
	assert.Equal(t, "Istirahat Pagi", v.TodaySchedules[1].Subject)
	assert.Equal(t, "Kimia", v.TodaySchedules[2].Subject)

	br := v.TodaySchedules[1]
	assert.True(t, br.IsBreak)
	assert.True(t, br.IsCurrent)
	assert.Equal(t, BreakTeacherLabel, br.Teacher)
	assert.Equal(t, "-", br.Kelas)
	assert.True(t, len(br.ID) > 6 && br.ID[:6] == "break_")

	assert.False(t, v.TodaySchedules[0].IsCurrent)
	assert.False(t, v.TodaySchedules[2].IsCurrent)
}

func TestResolveVideoHanyaSaatIstirahat(t *testing.T) {
	desc := "profil sekolah"
	thumb := "thumbnails/profil.jpg"
	vid := videoModel.VideoModel{
		VideoID:           uuid.New(),
		VideoJudul:        "Profil Sekolah",
		VideoDeskripsi:    &desc,
		VideoFileKey:      "videos/profil.mp4",
		VideoThumbnailKey: &thumb,
		VideoIsActive:     true,
		VideoUrutan:       1,
	}
	b := &fakeBreakReader{rows: []btModel.BreakTimeModel{
		mkBreak("Istirahat Siang", "12:00", "13:00", nil, 1),
	}}

	t.Run("saat istirahat: video dimuat dengan URL display", func(t *testing.T) {
		videos := &fakeVideoReader{rows: []videoModel.VideoModel{vid}}
		e := mkEngine(&fakeJadwalReader{}, b, videos)
		v := resolveAt(t, e, mkRuangan(nil), "Senin", "12:30:00")
		require.Len(t, v.Videos, 1)
		assert.Equal(t, "https://media.test/videos/profil.mp4", v.Videos[0].FileURL)
		require.NotNil(t, v.Videos[0].ThumbnailURL)
		assert.Equal(t, "https://media.test/thumbnails/profil.jpg", *v.Videos[0].ThumbnailURL)
	})

	t.Run("di luar istirahat: repo video tidak disentuh", func(t *testing.T) {
		videos := &fakeVideoReader{rows: []videoModel.VideoModel{vid}}
		e := mkEngine(&fakeJadwalReader{}, b, videos)
		v := resolveAt(t, e, mkRuangan(nil), "Senin", "09:00:00")
		assert.Empty(t, v.Videos)
		assert.Zero(t, videos.calls)
	})
}

func TestResolveHariKosong(t *testing.T) {
	pic := mkGuru("Pak Joko")
	e := mkEngine(&fakeJadwalReader{}, &fakeBreakReader{}, &fakeVideoReader{})

	v := resolveAt(t, e, mkRuangan(pic), "Sabtu", "09:00:00")
	assert.Nil(t, v.Current)
	assert.Nil(t, v.Next)
	assert.False(t, v.IsBreakTime)
	assert.Empty(t, v.TodaySchedules)
	require.NotNil(t, v.DisplayIdentity, "PIC tetap tampil walau hari kosong")
	assert.Equal(t, "Pak Joko", v.DisplayIdentity.Name)
}

func TestResolveRuanganNil(t *testing.T) {
	e := mkEngine(&fakeJadwalReader{}, &fakeBreakReader{}, &fakeVideoReader{})
	view, err := e.Resolve(context.Background(), nil, TimeContext{Hari: "Senin", Jam: tod("09:00")})
	require.NoError(t, err, "layar kiosk tidak boleh error hanya karena belum ada ruangan")
	assert.Nil(t, view.Current)
	assert.Nil(t, view.DisplayIdentity)
	assert.Empty(t, view.TodaySchedules)
}

func TestResolveIdempoten(t *testing.T) {
	pic := mkGuru("Pak Joko")
	b := &fakeBreakReader{rows: []btModel.BreakTimeModel{
		mkBreak("Istirahat Pagi", "10:00", "10:15", nil, 1),
	}}
	e := mkEngine(seninPagi(), b, &fakeVideoReader{})
	ruangan := mkRuangan(pic)
	tc := TimeContext{Hari: "Senin", Jam: tod("08:00:00")}

	v1, err := e.Resolve(context.Background(), ruangan, tc)
	require.NoError(t, err)
	v2, err := e.Resolve(context.Background(), ruangan, tc)
	require.NoError(t, err)
	assert.Equal(t, v1, v2, "input identik + store tidak berubah → view identik")
}

func TestResolveErrorRepoDiteruskan(t *testing.T) {
	dbErr := errors.New("connection refused")

	t.Run("jadwal reader gagal", func(t *testing.T) {
		e := mkEngine(&fakeJadwalReader{err: dbErr}, &fakeBreakReader{}, &fakeVideoReader{})
		_, err := e.Resolve(context.Background(), mkRuangan(nil), TimeContext{Hari: "Senin", Jam: tod("08:00")})
		assert.ErrorIs(t, err, dbErr)
	})

	t.Run("break reader gagal", func(t *testing.T) {
		e := mkEngine(&fakeJadwalReader{}, &fakeBreakReader{err: dbErr}, &fakeVideoReader{})
		_, err := e.Resolve(context.Background(), mkRuangan(nil), TimeContext{Hari: "Senin", Jam: tod("08:00")})
		assert.ErrorIs(t, err, dbErr)
	})
}

func TestAvatarURL(t *testing.T) {
	e := mkEngine(&fakeJadwalReader{}, &fakeBreakReader{}, &fakeVideoReader{})
	upload := guruModel.AvatarUpload
	link := guruModel.AvatarLink
	key := "avatars/sari.jpg"
	url := "https://cdn.example.com/sari.jpg"

	t.Run("upload → URL dari object key", func(t *testing.T) {
		got := e.avatarURL(&upload, &key)
		require.NotNil(t, got)
		assert.Equal(t, "https://media.test/avatars/sari.jpg", *got)
	})

	t.Run("link → URL dipakai langsung, tanpa sniffing prefix", func(t *testing.T) {
		got := e.avatarURL(&link, &url)
		require.NotNil(t, got)
		assert.Equal(t, url, *got)
	})

	t.Run("tanpa avatar", func(t *testing.T) {
		assert.Nil(t, e.avatarURL(nil, nil))
		assert.Nil(t, e.avatarURL(&upload, nil))
	})
}

func TestDefaultIdentity(t *testing.T) {
	e := mkEngine(&fakeJadwalReader{}, &fakeBreakReader{}, &fakeVideoReader{})

	t.Run("ruangan dengan PIC", func(t *testing.T) {
		pic := mkGuru("Pak Joko")
		id := e.DefaultIdentity(mkRuangan(pic))
		require.NotNil(t, id)
		assert.Equal(t, pic.GuruID.String(), id.ID)
		assert.Equal(t, "Pak Joko", id.Name)
	})

	t.Run("tanpa PIC", func(t *testing.T) {
		assert.Nil(t, e.DefaultIdentity(mkRuangan(nil)))
	})

	t.Run("ruangan nil", func(t *testing.T) {
		assert.Nil(t, e.DefaultIdentity(nil))
	})
}

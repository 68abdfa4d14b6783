package service

import (
	"time"

	"github.com/sltnnt08/ilab-v2/internals/constants"
	"github.com/sltnnt08/ilab-v2/internals/helpers/dbtime"
)

// Clock diinject supaya resolusi bisa dites dengan instant tetap.
type Clock interface {
	Now() time.Time
}

// RealClock: jam dinding zona sekolah (WIB).
type RealClock struct{ loc *time.Location }

func NewRealClock() *RealClock {
	loc, err := time.LoadLocation("Asia/Jakarta")
	if err != nil {
		loc = time.FixedZone("WIB", 7*3600)
	}
	return &RealClock{loc: loc}
}

func (c *RealClock) Now() time.Time { return time.Now().In(c.loc) }

// TimeContext: (hari, jam) hasil satu kali capture. Seluruh perbandingan
// dalam satu resolusi memakai context yang sama — jangan ambil Now() dua
// kali, bisa beda detik pas di batas jendela.
type TimeContext struct {
	Hari string
	Jam  dbtime.Tod
}

func NewTimeContext(clock Clock) TimeContext {
	now := clock.Now()
	return TimeContext{
		Hari: constants.WeekdayName(now.Weekday()),
		Jam:  dbtime.From(now),
	}
}

package dto

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sltnnt08/ilab-v2/internals/constants"
)

func TestValidateWaktuBreakTime(t *testing.T) {
	t.Run("tanpa hari berarti berlaku setiap hari", func(t *testing.T) {
		req := CreateBreakTimeRequest{BreakTimeJamMulai: "10:00", BreakTimeJamSelesai: "10:30"}
		mulai, selesai, errs := req.ValidateWaktu()
		require.Nil(t, errs)
		assert.Equal(t, "10:00:00", mulai.String())
		assert.Equal(t, "10:30:00", selesai.String())
	})

	t.Run("hari valid termasuk Minggu", func(t *testing.T) {
		req := CreateBreakTimeRequest{
			BreakTimeJamMulai:   "11:30",
			BreakTimeJamSelesai: "13:00",
			BreakTimeHari:       []string{constants.HariJumat, constants.HariMinggu},
		}
		_, _, errs := req.ValidateWaktu()
		assert.Nil(t, errs)
	})

	t.Run("hari tidak dikenal ditolak", func(t *testing.T) {
		req := CreateBreakTimeRequest{
			BreakTimeJamMulai:   "10:00",
			BreakTimeJamSelesai: "10:30",
			BreakTimeHari:       []string{"Funday"},
		}
		_, _, errs := req.ValidateWaktu()
		require.NotNil(t, errs)
		assert.Contains(t, errs, "break_time_hari")
	})

	t.Run("mulai >= selesai ditolak", func(t *testing.T) {
		req := UpdateBreakTimeRequest{BreakTimeJamMulai: "10:30", BreakTimeJamSelesai: "10:30"}
		_, _, errs := req.ValidateWaktu()
		require.NotNil(t, errs)
		assert.Contains(t, errs, "break_time_jam_selesai")
	})
}

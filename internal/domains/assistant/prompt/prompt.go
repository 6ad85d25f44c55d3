package prompt

import (
	"encoding/json"
	"fmt"

	"mykuliah/internal/domains/booking/rules"
	"mykuliah/internal/domains/room/model"
)

// Fallback is the only answer users see when the assistant cannot be reached.
const Fallback = "Maaf, berlaku ralat teknikal dalam sistem bantuan AI."

const systemTemplate = `Anda adalah asisten pintar "MyKuliah".
Tugas anda adalah membantu pengguna (pelajar atau pensyarah) mencari bilik kuliah yang sesuai.
Sistem tempahan sekarang adalah SEGERA dan AUTOMATIK (auto-booking). Jika slot kosong antara jam %s hingga %s, tempahan akan terus berjaya tanpa perlu menunggu kelulusan admin.
Maklumat bilik tersedia: %s.
Anda perlu:
1. Menjawab dalam Bahasa Melayu yang profesional dan mesra.
2. Mencadangkan bilik berdasarkan kapasiti atau kemudahan yang diminta.
3. Maklumkan pengguna bahawa mereka boleh menyemak jadual terkini di tab "Semua Tempahan".
4. Jika bilik penuh, cadangkan alternatif bilik lain yang kosong.`

// System renders the assistant persona with the operating hours and the room catalog as JSON.
func System(hours rules.Hours, rooms []model.Room) (string, error) {
	catalog, err := json.Marshal(rooms)
	if err != nil {
		return "", fmt.Errorf("failed to marshal room catalog: %w", err)
	}

	return fmt.Sprintf(systemTemplate, hours.Open, hours.Close, catalog), nil
}

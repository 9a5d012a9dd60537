package configs

import (
	"fmt"
	"strings"

	"github.com/Keshavsaini22/slooze-assignment/entity"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// OpenDB เปิด connection ตาม config; lifecycle เป็นของ main
func OpenDB(cfg *Config) (*gorm.DB, error) {
	var dialector gorm.Dialector
	switch cfg.DBDriver {
	case "sqlite", "sqlite3":
		dialector = sqlite.Open(SQLiteDSN(cfg.DBSource))
	default:
		return nil, fmt.Errorf("unsupported DB_DRIVER %q", cfg.DBDriver)
	}

	db, err := gorm.Open(dialector, &gorm.Config{
		Logger: logger.Default.LogMode(logger.Warn),
	})
	if err != nil {
		return nil, fmt.Errorf("connect database: %w", err)
	}
	return db, nil
}

// SQLiteDSN เติม option ที่ทุก connection ต้องใช้ ถ้า source ยังไม่ได้ระบุเอง
//
// transaction ทุกตัวเริ่มด้วย BEGIN IMMEDIATE จึงจอง write lock ตั้งแต่ต้น
// ไม่มีการ upgrade จาก read lock กลาง transaction; ตัวที่มาทีหลังรอตาม busy_timeout
func SQLiteDSN(source string) string {
	opts := []string{"_txlock=immediate", "_busy_timeout=5000", "_journal_mode=WAL"}
	var missing []string
	for _, o := range opts {
		key := o[:strings.IndexByte(o, '=')+1]
		if !strings.Contains(source, key) {
			missing = append(missing, o)
		}
	}
	if len(missing) == 0 {
		return source
	}
	sep := "?"
	if strings.Contains(source, "?") {
		sep = "&"
	}
	return source + sep + strings.Join(missing, "&")
}

func SetupDatabase(db *gorm.DB) error {
	// Migrate the schema
	return db.AutoMigrate(
		&entity.User{},
		&entity.Restaurant{}, &entity.MenuItem{},
		&entity.Cart{}, &entity.CartItem{},
		&entity.Order{}, &entity.OrderItem{},
		&entity.Payment{},
	)
}

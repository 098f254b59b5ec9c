package statistics

import (
	"fmt"
	"log"
	"strconv"
	"sync"
	"time"

	"github.com/donatinator/donatinator/internal/pkg/cache"
	"github.com/donatinator/donatinator/internal/pkg/database"
)

const (
	CacheKeyDonationsTotal = "statistics:donations:total"
	CacheKeyDonationsSum   = "statistics:donations:sum"
	CacheKeyDonationsDaily = "statistics:donations:daily:%s" // date YYYY-MM-DD
	CacheExpiration        = 30 * time.Minute
)

// StatisticsData holds the donation figures shown on the admin dashboard.
// Sums are in the currency's minor unit.
type StatisticsData struct {
	TodayDonations int64
	TotalDonations int64
	TotalAmount    int64
}

var (
	lastCacheUpdate     time.Time
	cacheUpdateMutex    sync.Mutex
	cacheUpdateInterval = 5 * time.Minute
)

// UpdateCacheIfNeeded refreshes the cached figures when the last refresh is
// older than the update interval.
func UpdateCacheIfNeeded() {
	cacheUpdateMutex.Lock()
	defer cacheUpdateMutex.Unlock()

	if time.Since(lastCacheUpdate) <= cacheUpdateInterval {
		return
	}

	if err := UpdateStatisticsCache(); err != nil {
		log.Printf("Error updating statistics cache: %v", err)
		return
	}
	lastCacheUpdate = time.Now()
}

// ResetCacheUpdateTimer forces the next UpdateCacheIfNeeded to refresh, e.g.
// right after a donation lands.
func ResetCacheUpdateTimer() {
	cacheUpdateMutex.Lock()
	defer cacheUpdateMutex.Unlock()

	lastCacheUpdate = time.Time{}
}

// UpdateStatisticsCache recomputes all donation figures from the database
// and stores them in the cache.
func UpdateStatisticsCache() error {
	db := database.GetDB()

	var total int64
	if err := db.Table("donations").Count(&total).Error; err != nil {
		return fmt.Errorf("failed to count donations: %w", err)
	}

	row := struct {
		Total int64 `gorm:"column:total"`
	}{}
	if _, err := database.GetOne(db, &row, "SELECT COALESCE(SUM(amount), 0) AS total FROM donations"); err != nil {
		return fmt.Errorf("failed to sum donations: %w", err)
	}
	sum := row.Total

	now := time.Now()
	today := now.Format("2006-01-02")
	todayStart, todayEnd := dayBounds(now)

	var todayCount int64
	if err := db.Table("donations").Where("created_at BETWEEN ? AND ?", todayStart, todayEnd).Count(&todayCount).Error; err != nil {
		return fmt.Errorf("failed to count today's donations: %w", err)
	}

	if err := cache.Set(CacheKeyDonationsTotal, strconv.FormatInt(total, 10), CacheExpiration); err != nil {
		return err
	}
	if err := cache.Set(CacheKeyDonationsSum, strconv.FormatInt(sum, 10), CacheExpiration); err != nil {
		return err
	}
	dailyKey := fmt.Sprintf(CacheKeyDonationsDaily, today)
	if err := cache.Set(dailyKey, strconv.FormatInt(todayCount, 10), CacheExpiration); err != nil {
		return err
	}

	log.Printf("Statistics updated in cache: donations %d, amount %d, today %d", total, sum, todayCount)
	return nil
}

// dayBounds returns the start and end of the calendar day holding t, in t's
// location. The database connection stores timestamps in local time, so the
// bounds must be local too or the window shifts by the UTC offset.
func dayBounds(t time.Time) (time.Time, time.Time) {
	start := time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
	return start, start.Add(24 * time.Hour)
}

func cachedInt64(key string) (int64, bool) {
	val, err := cache.Get(key)
	if err != nil {
		return 0, false
	}
	n, err := strconv.ParseInt(val, 10, 64)
	if err != nil {
		return 0, false
	}
	return n, true
}

// GetStatisticsData returns the donation figures, refreshing the cache when
// it has gone stale.
func GetStatisticsData() StatisticsData {
	UpdateCacheIfNeeded()

	data := StatisticsData{}
	if n, ok := cachedInt64(CacheKeyDonationsTotal); ok {
		data.TotalDonations = n
	}
	if n, ok := cachedInt64(CacheKeyDonationsSum); ok {
		data.TotalAmount = n
	}
	dailyKey := fmt.Sprintf(CacheKeyDonationsDaily, time.Now().Format("2006-01-02"))
	if n, ok := cachedInt64(dailyKey); ok {
		data.TodayDonations = n
	}
	return data
}

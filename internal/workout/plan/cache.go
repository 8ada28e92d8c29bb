package plan

import (
	"encoding/json"
	"fmt"

	"github.com/coocood/freecache"
	log "github.com/sirupsen/logrus"
)

const (
	oneHour         = 60 * 60
	planCacheExpire = oneHour * 1 // expire in seconds
)

// Cache keeps assembled day plans between progression writes. Entries
// expire after an hour on their own, Invalidate drops them early.
type Cache struct {
	cache *freecache.Cache
}

func NewCache() *Cache {
	megabyte := 1024 * 1024
	cacheSize := 50 * megabyte
	return &Cache{
		cache: freecache.NewCache(cacheSize),
	}
}

func cacheKey(week, day int) []byte {
	return []byte(fmt.Sprintf("plan::%d::%d", week, day))
}

func (c *Cache) Get(week, day int) *DayPlan {
	planBytes, err := c.cache.Get(cacheKey(week, day))
	if err != nil {
		log.Tracef("plan for week %d day %d not in cache: %s", week, day, err)
		return nil
	}

	var dayPlan DayPlan
	if err := json.Unmarshal(planBytes, &dayPlan); err != nil {
		log.Errorf("failed to unmarshal cached plan for week %d day %d: %s", week, day, err)
		return nil
	}

	log.Tracef("found plan for week %d day %d in cache", week, day)
	return &dayPlan
}

func (c *Cache) Set(dayPlan *DayPlan) {
	planBytes, err := json.Marshal(dayPlan)
	if err != nil {
		log.Errorf("failed to marshal plan for week %d day %d: %s", dayPlan.Week, dayPlan.Day, err)
		return
	}

	if err := c.cache.Set(cacheKey(dayPlan.Week, dayPlan.Day), planBytes, planCacheExpire); err != nil {
		log.Errorf("failed to write plan cache for week %d day %d: %s", dayPlan.Week, dayPlan.Day, err)
		return
	}

	log.Debugf("plan cache set for week %d day %d", dayPlan.Week, dayPlan.Day)
}

// Invalidate drops the cached plan for one week and day, called when new
// progression rows land for that target.
func (c *Cache) Invalidate(week, day int) {
	c.cache.Del(cacheKey(week, day))
	log.Debugf("plan cache invalidated for week %d day %d", week, day)
}

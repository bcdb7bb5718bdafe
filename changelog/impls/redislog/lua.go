package redislog

import "github.com/go-redis/redis/v8"

const errIndexMismatch = "index mismatch"

var appendEntryScript = redis.NewScript(`
		local poolKey = KEYS[1]

		local vIndex = tonumber(ARGV[1])
		local vEntry = ARGV[2]

		local n = redis.call("LLEN", poolKey)
		if n ~= vIndex then
			return redis.error_reply("index mismatch")
		end

		redis.call("RPUSH", poolKey, vEntry)

		return n + 1
	`)

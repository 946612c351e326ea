package core

import "hash/fnv"

func Hash(value string) uint32 {
	hash := fnv.New32a()
	hash.Write([]byte(value))
	return hash.Sum32()
}

// Partition routes a word to one of numPartitions reducers.
func Partition(key string, numPartitions int) int {
	if numPartitions <= 1 {
		return 0
	}
	return int(Hash(key) % uint32(numPartitions))
}

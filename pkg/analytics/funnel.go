// Copyright (c) 2025 AccelByte Inc. All Rights Reserved.
// This is licensed software from AccelByte Inc, for limitations
// and restrictions contact your company contract manager.

package analytics

import "sort"

// BuildMissionFunnel reports engagement and completion for each mission in
// missionIDs, in that order. With no mission IDs every mission present in the
// records is reported in ascending ID order.
//
// ConversionFromPrevious is the share of the previous step's completers that
// engaged with this step's mission; the first step is always 100.
func BuildMissionFunnel(records []UserAnalyticsRecord, missionIDs []int64) []FunnelStep {
	engaged := make(map[int64]map[string]struct{})
	completed := make(map[int64]map[string]struct{})
	for _, rec := range records {
		for _, e := range rec.ProgressEntries {
			addUser(engaged, e.MissionID, rec.UserUUID)
			if e.CompletionTime != nil {
				addUser(completed, e.MissionID, rec.UserUUID)
			}
		}
	}

	ids := missionIDs
	if len(ids) == 0 {
		ids = make([]int64, 0, len(engaged))
		for id := range engaged {
			ids = append(ids, id)
		}
		sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })
	}

	steps := make([]FunnelStep, 0, len(ids))
	var prevCompleted map[string]struct{}
	for i, id := range ids {
		step := FunnelStep{
			MissionID: id,
			Engaged:   len(engaged[id]),
			Completed: len(completed[id]),
		}
		if step.Engaged > 0 {
			step.CompletionRate = float64(step.Completed) / float64(step.Engaged) * 100
		}

		if i == 0 {
			step.ConversionFromPrevious = 100
		} else if len(prevCompleted) > 0 {
			converted := 0
			for user := range prevCompleted {
				if _, ok := engaged[id][user]; ok {
					converted++
				}
			}
			step.ConversionFromPrevious = float64(converted) / float64(len(prevCompleted)) * 100
		}

		prevCompleted = completed[id]
		steps = append(steps, step)
	}
	return steps
}

func addUser(sets map[int64]map[string]struct{}, missionID int64, user string) {
	s, ok := sets[missionID]
	if !ok {
		s = make(map[string]struct{})
		sets[missionID] = s
	}
	s[user] = struct{}{}
}

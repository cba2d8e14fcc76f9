/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

package query

import (
	"testing"

	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/expression"
	"github.com/stretchr/testify/require"

	"github.com/suparena/objectstore/errors"
)

func TestTranslate(t *testing.T) {
	testCases := []struct {
		name      string
		pred      Predicate
		shouldErr bool
		construct string
	}{
		{
			name: "equal",
			pred: Equal("title", "Bughouse"),
		},
		{
			name: "not equal",
			pred: NotEqual("title", "Bughouse"),
		},
		{
			name: "numeric comparisons",
			pred: And(GreaterThan("players", 1), LessOrEqual("players", 4), GreaterOrEqual("round", 1), LessThan("round", 10)),
		},
		{
			name: "begins with",
			pred: BeginsWith("title", "Bug"),
		},
		{
			name:      "begins with non-string prefix",
			pred:      Predicate{op: opBeginsWith, key: "title", value: 42},
			shouldErr: true,
			construct: "beginsWith",
		},
		{
			name: "contains",
			pred: Contains("title", "house"),
		},
		{
			name: "in",
			pred: In("arena", "oakville", "burlington"),
		},
		{
			name:      "in without values",
			pred:      In("arena"),
			shouldErr: true,
			construct: "in",
		},
		{
			name: "exists and not exists",
			pred: And(Exists("finishedAt"), NotExists("abandonedAt")),
		},
		{
			name: "nested compound",
			pred: Or(
				And(Equal("arena", "oakville"), GreaterThan("players", 2)),
				Not(Exists("finishedAt")),
			),
		},
		{
			name: "single-operand and",
			pred: And(Equal("arena", "oakville")),
		},
		{
			name:      "empty and",
			pred:      And(),
			shouldErr: true,
			construct: "and",
		},
		{
			name:      "empty or",
			pred:      Or(),
			shouldErr: true,
			construct: "or",
		},
		{
			name:      "matches is unsupported",
			pred:      Matches("title", "^Bug.*"),
			shouldErr: true,
			construct: "matches",
		},
		{
			name:      "unsupported construct nested in a compound",
			pred:      And(Equal("arena", "oakville"), Matches("title", "^Bug.*")),
			shouldErr: true,
			construct: "matches",
		},
		{
			name:      "empty attribute name",
			pred:      Equal("", "x"),
			shouldErr: true,
			construct: "equal",
		},
		{
			name:      "zero predicate",
			pred:      Predicate{},
			shouldErr: true,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			cond, err := Translate(tc.pred)
			if tc.shouldErr {
				require.Error(t, err)
				require.True(t, errors.IsUnsupportedPredicate(err), "error should match ErrUnsupportedPredicate, got %v", err)
				if tc.construct != "" {
					require.Contains(t, err.Error(), tc.construct)
				}
				return
			}
			require.NoError(t, err)
			require.True(t, cond.IsSet())

			// The condition must survive a full expression build.
			_, err = expression.NewBuilder().WithFilter(cond).Build()
			require.NoError(t, err)
		})
	}
}

// File: example_test.go
// Title: Examples for jtime
// Description: Runnable examples for time points and the format engine.
// Author: msto63
// Version: v0.2.0
// Created: 2025-08-14
// Modified: 2025-08-14
//
// Change History:
// - 2025-08-14 v0.2.0: Initial examples

package jtime_test

import (
	"fmt"

	"github.com/msto63/jcal/foundation/utils/timex"
	"github.com/msto63/jcal/pkg/jtime"
)

func ExampleFormat() {
	tp, err := jtime.New(1402, 7, 15, 14, 30, 0, nil)
	if err != nil {
		fmt.Println(err)
		return
	}
	fmt.Println(jtime.Format(tp, "%d %B %Y, %I:%M %p"))
	fmt.Println(jtime.Format(tp, "%Y-%m-%d %z"))
	// Output:
	// 15 مهر 1402, 02:30 ب.ظ
	// 1402-07-15 %z
}

func ExampleParse() {
	tp, err := jtime.Parse("۱۵ مهر ۱۴۰۲ ۰۳:۳۰ ب.ظ", "%d %B %Y %I:%M %p")
	if err != nil {
		fmt.Println(err)
		return
	}
	fmt.Println(tp)
	fmt.Println(tp.ToGregorian().Format("2006-01-02 15:04"))
	// Output:
	// 1402-07-15 15:30:00
	// 2023-10-07 15:30
}

func ExampleTimePoint_AtZone() {
	tehran, err := timex.LoadZone("Asia/Tehran")
	if err != nil {
		fmt.Println(err)
		return
	}
	tp, _ := jtime.New(1402, 1, 1, 12, 0, 0, tehran)
	utc, _ := tp.AtZone(timex.UTC)
	fmt.Println(utc)
	// Output: 1402-01-01 08:30:00 UTC
}

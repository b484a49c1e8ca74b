// SPDX-License-Identifier: GPL-2.0-or-later

//go:build !snddebug

package snd

const debugChecks = false

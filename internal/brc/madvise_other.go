//go:build !(linux || darwin || freebsd)

package brc

func adviseSequential([]byte) {}

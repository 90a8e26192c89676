// Package qroute computes forwarding tables for quantum-repeater networks
// that respect a minimum end-to-end entanglement fidelity, not just hop
// count or distance.
//
// 🚀 What is qroute?
//
//	Given a static snapshot of router qualities (memory efficiency, raw
//	fidelity) and channel distances, qroute decides for every
//	(source, destination) pair which neighbour the source hands traffic to:
//		• Fidelity model: 0.975 at the source, degraded by every repeater
//		• Six selection policies: shortest, efficiency-weighted, K-shortest,
//		  KX-shortest and the priority-aware (QoS) variants of the last two
//		• A table builder writing through a narrow port, optionally in parallel
//		• An evaluation harness scoring mean / stddev fidelity per priority class
//
// Packages:
//
//	core/       Graph, Node, Link, Path; thread-safe, deterministic iteration
//	bfs/        hop-count BFS with every shortest predecessor
//	dijkstra/   weighted shortest paths with a pluggable directed cost
//	ksp/        Yen's K shortest simple paths by hop count
//	fidelity/   end-to-end fidelity of a path and the acceptance test
//	policy/     the path-selection policies
//	table/      forwarding tables, the write port and the table builder
//	evaluate/   walk installed tables and score them
//	topology/   snapshot loading and relay collapse into a core.Graph
//	assign/     seeded efficiency draws applied before a build
//	config/, logging/, metrics/  viper config, zap logging, Prometheus metrics
//	cmd/qroute  the command-line front end
//
// Quick ASCII example:
//
//	S ──bsm── M ──bsm── D      e = 0.9, F = 0.95 at M
//
//	fidelity(S→M→D) = 0.7552 > 0.53, so S forwards to M.
//
//	go install github.com/katalvlaran/qroute/cmd/qroute@latest
package qroute

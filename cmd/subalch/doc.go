// Command subalch transcribes recordings, merges recognized fragments into
// subtitle files, and compares recognizer output against ground-truth
// scripts.
package main

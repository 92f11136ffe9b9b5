package utils

import (
	"bufio"
	"encoding/binary"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
)

// WriteSamples stores samples as little-endian float32.
func WriteSamples(filename string, samples []float32) error {

	file, err := os.Create(filename)
	if err != nil {
		return fmt.Errorf("failed to create file: %w", err)
	}
	defer file.Close()

	w := bufio.NewWriter(file)
	if err = binary.Write(w, binary.LittleEndian, samples); err != nil {
		return fmt.Errorf("failed to write file: %w", err)
	}
	if err = w.Flush(); err != nil {
		return fmt.Errorf("failed to write file: %w", err)
	}

	return file.Close()
}

// WriteSamplesTxt stores one sample per line in the shortest form that reads back exactly.
func WriteSamplesTxt(filename string, samples []float32) error {

	file, err := os.Create(filename)
	if err != nil {
		return fmt.Errorf("failed to create file: %w", err)
	}
	defer file.Close()

	w := bufio.NewWriter(file)
	line := make([]byte, 0, 32)
	for _, v := range samples {
		line = strconv.AppendFloat(line[:0], float64(v), 'g', -1, 32)
		line = append(line, '\n')
		if _, err = w.Write(line); err != nil {
			return fmt.Errorf("failed to write file: %w", err)
		}
	}
	if err = w.Flush(); err != nil {
		return fmt.Errorf("failed to write file: %w", err)
	}

	return file.Close()
}

// ReadSamples loads a file written by WriteSamples, or by WriteSamplesTxt when the name ends in .txt.
func ReadSamples(filename string) ([]float32, error) {

	file, err := os.Open(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to open file: %w", err)
	}
	defer file.Close()

	if strings.EqualFold(filepath.Ext(filename), ".txt") {
		return readSamplesTxt(file)
	}

	fileInfo, err := file.Stat()
	if err != nil {
		return nil, fmt.Errorf("failed to get file info: %w", err)
	}

	samples := make([]float32, fileInfo.Size()/4)
	err = binary.Read(bufio.NewReader(file), binary.LittleEndian, samples)
	if err != nil {
		return nil, fmt.Errorf("failed to read file: %w", err)
	}

	return samples, nil
}

func readSamplesTxt(file *os.File) ([]float32, error) {
	var samples []float32
	scanner := bufio.NewScanner(file)
	for n := 1; scanner.Scan(); n++ {
		text := strings.TrimSpace(scanner.Text())
		if text == "" {
			continue
		}
		v, err := strconv.ParseFloat(text, 32)
		if err != nil {
			return nil, fmt.Errorf("line %d: %w", n, err)
		}
		samples = append(samples, float32(v))
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("failed to read file: %w", err)
	}
	return samples, nil
}

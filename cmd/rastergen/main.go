package main

import (
	"flag"
	"fmt"

	"CRTRaster/cmd/rastergen/config"
	"CRTRaster/internel/callbacks"
	"CRTRaster/internel/utils"
	"CRTRaster/pkg/async"
	"CRTRaster/pkg/convert"
	"CRTRaster/pkg/device"
	"CRTRaster/pkg/raster"
)

func main() {

	configPath := flag.String("c", "config.yml", "Set the path for the config file")
	binPath := flag.String("o", "", "Write float32 samples to this binary file instead of streaming")
	txtPath := flag.String("txt", "", "Write samples to this text file, one per line, instead of streaming")
	playPath := flag.String("play", "", "Loop a previously written .bin or .txt file on the device")
	recordPath := flag.String("record", "", "Save the device input to this binary file on stop")
	lines := flag.Int("lines", 0, "Number of lines to write, 0 means one frame")
	debug := flag.Bool("debug", false, "Print device trace lines")
	flag.Parse()

	device.Debug = *debug

	cfg, err := config.LoadConfig(*configPath)
	if err != nil {
		fmt.Printf("Error loading config: %v\n", err)
		return
	}

	fmt.Printf("Config: %+v\n", *cfg)

	g, err := config.CreateGenerator(cfg)
	if err != nil {
		fmt.Printf("Error creating generator: %v\n", err)
		return
	}

	rc := g.Config()
	fmt.Printf("[Raster] pattern %v, %d samples per line (%d sync, %d blank, %d active), %d lines per frame\n",
		rc.Pattern, rc.SamplesPerLine, rc.SyncLen, rc.BlankLen, rc.NumActive(), rc.LinesPerFrame)

	if *binPath != "" || *txtPath != "" {
		n := *lines
		if n <= 0 {
			n = rc.LinesPerFrame
		}
		if err := dump(g, n, *binPath, *txtPath); err != nil {
			fmt.Printf("Error writing samples: %v\n", err)
		}
		return
	}

	dev, err := config.CreateDevice(cfg)
	if err != nil {
		fmt.Printf("Error creating device: %v\n", err)
		return
	}

	var callback func(in, out []int32)
	if *playPath != "" {
		track, err := utils.ReadSamples(*playPath)
		if err != nil {
			fmt.Printf("Error reading %s: %v\n", *playPath, err)
			return
		}
		fmt.Printf("[Raster] replaying %d samples from %s\n", len(track), *playPath)
		player := &callbacks.Player{Track: track, Loop: true}
		callback = player.Update
	} else {
		source := raster.NewLocked(g)
		player := &callbacks.Raster{Source: source}
		callback = player.Update
		defer func() {
			sample, line := source.Position()
			fmt.Printf("[Raster] stopped at line %d sample %d\n", line, sample)
		}()
	}

	var recorder *callbacks.Recorder
	if *recordPath != "" {
		recorder = &callbacks.Recorder{}
		play := callback
		callback = func(in, out []int32) {
			recorder.Update(in, out)
			play(in, out)
		}
	}

	fmt.Printf("[Device] starting %s, press Enter to stop\n", cfg.Device.Type)
	dev.Start(callback)
	<-async.Any(async.EnterKey(), async.Exit())
	dev.Stop()

	if recorder != nil {
		if err := saveRecording(recorder, *recordPath); err != nil {
			fmt.Printf("Error writing %s: %v\n", *recordPath, err)
		}
	}
	fmt.Println("Exiting...")
}

// saveRecording writes the captured input as float32 samples.
func saveRecording(recorder *callbacks.Recorder, filename string) error {
	track := recorder.Track()
	samples := make([]float32, len(track))
	convert.Int32ToFloat32(samples, track)
	if err := utils.WriteSamples(filename, samples); err != nil {
		return err
	}
	fmt.Printf("[Raster] recorded %d samples to %s\n", len(samples), filename)
	return nil
}

// dump writes lines full lines of samples to the binary and/or text file.
func dump(g *raster.Generator, lines int, binPath, txtPath string) error {
	samples := make([]float32, lines*g.Config().SamplesPerLine)
	g.Fill(samples)

	var jobs []<-chan error
	if binPath != "" {
		jobs = append(jobs, async.Job(func() error {
			return utils.WriteSamples(binPath, samples)
		}))
	}
	if txtPath != "" {
		jobs = append(jobs, async.Job(func() error {
			return utils.WriteSamplesTxt(txtPath, samples)
		}))
	}
	for _, job := range jobs {
		if err := <-job; err != nil {
			return err
		}
	}

	fmt.Printf("[Raster] wrote %d lines (%d samples)\n", lines, len(samples))
	return nil
}

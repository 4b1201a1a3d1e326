package seed

import (
	"time"

	"github.com/ashureev/devops-courses/internal/domain"
)

func video(url string) *string {
	return &url
}

// Courses returns the built-in DevOps curriculum stamped with now.
func Courses(now time.Time) []domain.Course {
	courses := []domain.Course{
		{
			ID:            "devops-fundamentals",
			Title:         "DevOps Fundamentals",
			Description:   "Learn the core concepts and principles of DevOps culture, practices, and tools",
			Category:      "Fundamentals",
			Difficulty:    "Beginner",
			DurationHours: 8,
			Instructor:    "Sarah Johnson",
			ImageURL:      "https://images.unsplash.com/photo-1556075798-4825dfaaf498?w=400&h=300&fit=crop",
			Lessons: []domain.Lesson{
				{
					ID:              "lesson-1",
					Title:           "What is DevOps?",
					Description:     "Introduction to DevOps culture and methodology",
					Content:         "DevOps is a set of practices that combines software development (Dev) and IT operations (Ops). It aims to shorten the systems development life cycle and provide continuous delivery with high software quality.",
					DurationMinutes: 45,
					VideoURL:        video("https://www.youtube.com/watch?v=_I94-tJlovg"),
					Order:           1,
				},
				{
					ID:              "lesson-2",
					Title:           "DevOps Culture and Principles",
					Description:     "Understanding collaboration, automation, and continuous improvement",
					Content:         "DevOps culture emphasizes collaboration between development and operations teams, automation of processes, and continuous improvement through feedback loops.",
					DurationMinutes: 60,
					VideoURL:        video("https://www.youtube.com/watch?v=UbtB4sMaaNM"),
					Order:           2,
				},
				{
					ID:              "lesson-3",
					Title:           "DevOps Lifecycle",
					Description:     "Plan, Code, Build, Test, Release, Deploy, Operate, Monitor",
					Content:         "The DevOps lifecycle consists of 8 phases: Plan, Code, Build, Test, Release, Deploy, Operate, and Monitor. Each phase involves specific tools and practices.",
					DurationMinutes: 50,
					VideoURL:        video("https://www.youtube.com/watch?v=Xrgk023l4lI"),
					Order:           3,
				},
			},
		},
		{
			ID:            "cicd-pipeline",
			Title:         "CI/CD Pipeline Mastery",
			Description:   "Master Continuous Integration and Continuous Deployment with Jenkins, GitHub Actions, and GitLab CI",
			Category:      "CI/CD",
			Difficulty:    "Intermediate",
			DurationHours: 12,
			Instructor:    "Mike Chen",
			ImageURL:      "https://images.unsplash.com/photo-1518432031352-d6fc5c10da5a?w=400&h=300&fit=crop",
			Lessons: []domain.Lesson{
				{
					ID:              "lesson-1",
					Title:           "Introduction to CI/CD",
					Description:     "Understanding Continuous Integration and Continuous Deployment",
					Content:         "CI/CD is a method to frequently deliver apps to customers by introducing automation into the stages of app development.",
					DurationMinutes: 40,
					VideoURL:        video("https://www.youtube.com/watch?v=1er2cjUq1UI"),
					Order:           1,
				},
				{
					ID:              "lesson-2",
					Title:           "Setting up Jenkins",
					Description:     "Install and configure Jenkins for CI/CD",
					Content:         "Jenkins is an open-source automation server that enables developers to build, test, and deploy their applications.",
					DurationMinutes: 75,
					VideoURL:        video("https://www.youtube.com/watch?v=FX322RVNGj4"),
					Order:           2,
				},
				{
					ID:              "lesson-3",
					Title:           "GitHub Actions Workflows",
					Description:     "Create automated workflows with GitHub Actions",
					Content:         "GitHub Actions makes it easy to automate all your software workflows with CI/CD capabilities.",
					DurationMinutes: 65,
					VideoURL:        video("https://www.youtube.com/watch?v=R8_veQiYBjI"),
					Order:           3,
				},
			},
		},
		{
			ID:            "docker-containerization",
			Title:         "Docker & Containerization",
			Description:   "Learn containerization with Docker, Docker Compose, and container orchestration",
			Category:      "Containerization",
			Difficulty:    "Intermediate",
			DurationHours: 10,
			Instructor:    "Alex Rodriguez",
			ImageURL:      "https://images.unsplash.com/photo-1605745341112-85968b19335b?w=400&h=300&fit=crop",
			Lessons: []domain.Lesson{
				{
					ID:              "lesson-1",
					Title:           "Docker Fundamentals",
					Description:     "Introduction to containers and Docker basics",
					Content:         "Docker is a platform that uses OS-level virtualization to deliver software in packages called containers.",
					DurationMinutes: 55,
					VideoURL:        video("https://www.youtube.com/watch?v=fqMOX6JJhGo"),
					Order:           1,
				},
				{
					ID:              "lesson-2",
					Title:           "Dockerfile and Images",
					Description:     "Creating custom Docker images with Dockerfile",
					Content:         "A Dockerfile is a text document that contains commands to assemble a Docker image.",
					DurationMinutes: 70,
					VideoURL:        video("https://www.youtube.com/watch?v=LQjaJINkQXY"),
					Order:           2,
				},
				{
					ID:              "lesson-3",
					Title:           "Docker Compose",
					Description:     "Multi-container applications with Docker Compose",
					Content:         "Docker Compose is a tool for defining and running multi-container Docker applications.",
					DurationMinutes: 60,
					VideoURL:        video("https://www.youtube.com/watch?v=HG6yIjZapSA"),
					Order:           3,
				},
			},
		},
		{
			ID:            "kubernetes-orchestration",
			Title:         "Kubernetes Orchestration",
			Description:   "Master container orchestration with Kubernetes, deployments, services, and scaling",
			Category:      "Orchestration",
			Difficulty:    "Advanced",
			DurationHours: 15,
			Instructor:    "Emily Davis",
			ImageURL:      "https://images.unsplash.com/photo-1667372393119-3d4c48d07fc9?w=400&h=300&fit=crop",
			Lessons: []domain.Lesson{
				{
					ID:              "lesson-1",
					Title:           "Kubernetes Architecture",
					Description:     "Understanding K8s components and architecture",
					Content:         "Kubernetes is an open-source container orchestration platform that automates deployment, scaling, and management of containerized applications.",
					DurationMinutes: 80,
					VideoURL:        video("https://www.youtube.com/watch?v=X48VuDVv0do"),
					Order:           1,
				},
				{
					ID:              "lesson-2",
					Title:           "Pods and Deployments",
					Description:     "Creating and managing Kubernetes workloads",
					Content:         "Pods are the smallest deployable units in Kubernetes. Deployments provide declarative updates for Pods and ReplicaSets.",
					DurationMinutes: 90,
					VideoURL:        video("https://www.youtube.com/watch?v=PH-2FfFD2PU"),
					Order:           2,
				},
				{
					ID:              "lesson-3",
					Title:           "Services and Networking",
					Description:     "Kubernetes networking and service discovery",
					Content:         "Services enable network access to a set of Pods in Kubernetes clusters.",
					DurationMinutes: 85,
					VideoURL:        video("https://www.youtube.com/watch?v=T4Z7visMM4E"),
					Order:           3,
				},
			},
		},
		{
			ID:            "monitoring-observability",
			Title:         "Monitoring & Observability",
			Description:   "Implement monitoring solutions with Prometheus, Grafana, and ELK stack",
			Category:      "Monitoring",
			Difficulty:    "Intermediate",
			DurationHours: 9,
			Instructor:    "David Kim",
			ImageURL:      "https://images.unsplash.com/photo-1551288049-bebda4e38f71?w=400&h=300&fit=crop",
			Lessons: []domain.Lesson{
				{
					ID:              "lesson-1",
					Title:           "Monitoring Fundamentals",
					Description:     "Introduction to monitoring and observability concepts",
					Content:         "Monitoring is the practice of collecting, processing, aggregating, and displaying real-time quantitative data about a system.",
					DurationMinutes: 45,
					VideoURL:        video("https://www.youtube.com/watch?v=SmF99iVelNo"),
					Order:           1,
				},
				{
					ID:              "lesson-2",
					Title:           "Prometheus & Grafana",
					Description:     "Setting up metrics collection and visualization",
					Content:         "Prometheus is an open-source monitoring system with a time-series database. Grafana is a visualization tool.",
					DurationMinutes: 75,
					VideoURL:        video("https://www.youtube.com/watch?v=9TJx7QTrTyo"),
					Order:           2,
				},
				{
					ID:              "lesson-3",
					Title:           "Log Management with ELK",
					Description:     "Centralized logging with Elasticsearch, Logstash, and Kibana",
					Content:         "The ELK stack consists of Elasticsearch, Logstash, and Kibana for log management and analysis.",
					DurationMinutes: 70,
					VideoURL:        video("https://www.youtube.com/watch?v=gS_nHTWZEJ8"),
					Order:           3,
				},
			},
		},
		{
			ID:            "aws-cloud-devops",
			Title:         "AWS Cloud DevOps",
			Description:   "DevOps practices on AWS with CodePipeline, ECS, Lambda, and CloudFormation",
			Category:      "Cloud",
			Difficulty:    "Advanced",
			DurationHours: 18,
			Instructor:    "Jennifer Wilson",
			ImageURL:      "https://images.unsplash.com/photo-1451187580459-43490279c0fa?w=400&h=300&fit=crop",
			Lessons: []domain.Lesson{
				{
					ID:              "lesson-1",
					Title:           "AWS DevOps Overview",
					Description:     "Introduction to AWS DevOps services and tools",
					Content:         "AWS provides a comprehensive set of DevOps tools including CodeCommit, CodeBuild, CodeDeploy, and CodePipeline.",
					DurationMinutes: 60,
					VideoURL:        video("https://www.youtube.com/watch?v=Pvb74TlV8SA"),
					Order:           1,
				},
				{
					ID:              "lesson-2",
					Title:           "AWS CodePipeline",
					Description:     "Building CI/CD pipelines with AWS CodePipeline",
					Content:         "AWS CodePipeline is a continuous integration and continuous delivery service for fast and reliable application updates.",
					DurationMinutes: 95,
					VideoURL:        video("https://www.youtube.com/watch?v=YxcIj_SLflw"),
					Order:           2,
				},
				{
					ID:              "lesson-3",
					Title:           "Infrastructure as Code",
					Description:     "CloudFormation and AWS CDK for infrastructure automation",
					Content:         "Infrastructure as Code (IaC) allows you to manage and provision infrastructure through code instead of manual processes.",
					DurationMinutes: 105,
					VideoURL:        video("https://www.youtube.com/watch?v=9Xpuprxg7aY"),
					Order:           3,
				},
			},
		},
	}

	for i := range courses {
		courses[i].CreatedAt = now
		courses[i].UpdatedAt = now
	}
	return courses
}
